package circularbuffer

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable view of the buffer to w: the size and
// cursors, the logical order, and every physical slot with H marking the
// head and T the tail. A non-empty label is printed as a header line.
//
//	==== push 3 ====
//	size=3/4, head=0, tail=2
//	logical order: 1 2 3
//	raw slots:     H[0]=1 [1]=2 T[2]=3 [3]=0
func (rb *RingBuffer[T]) Dump(w io.Writer, label string) error {
	var sb strings.Builder
	if label != "" {
		fmt.Fprintf(&sb, "==== %s ====\n", label)
	}

	tail := -1
	tailStr := "-"
	if rb.count > 0 {
		tail = rb.tail()
		tailStr = fmt.Sprint(tail)
	}
	fmt.Fprintf(&sb, "size=%d/%d, head=%d, tail=%s\n", rb.count, len(rb.data), rb.head, tailStr)

	sb.WriteString("logical order:")
	for i := 0; i < rb.count; i++ {
		fmt.Fprintf(&sb, " %v", rb.data[(rb.head+i)%len(rb.data)])
	}

	sb.WriteString("\nraw slots:    ")
	for i, v := range rb.data {
		sb.WriteByte(' ')
		if rb.count > 0 && i == rb.head {
			sb.WriteByte('H')
		}
		if i == tail {
			sb.WriteByte('T')
		}
		fmt.Fprintf(&sb, "[%d]=%v", i, v)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
