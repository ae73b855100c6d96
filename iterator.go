package circularbuffer

import "fmt"

// Iterator is a forward-only position in a RingBuffer's logical order.
//
// An Iterator is a snapshot: it holds the storage block, head and length
// the buffer had when Begin or End was called. Later PushBack, PopFront,
// Drain or Reset calls move the buffer onto a private copy of its storage
// and leave the iterator's view untouched. To observe new contents, call
// Begin again.
//
// The snapshot holds element values, not ownership. Reset still calls
// Cleanup on the elements it drops, even if a live iterator will yield
// them afterwards.
//
// The zero Iterator is already exhausted.
type Iterator[T any] struct {
	rb     *RingBuffer[T]
	data   []T
	head   int
	count  int
	offset int
}

// Begin returns an iterator positioned at the oldest element.
func (rb *RingBuffer[T]) Begin() Iterator[T] {
	if rb.count > 0 {
		rb.shared = true
	}
	return rb.iterator()
}

// End returns the past-the-end iterator for the buffer's current length.
func (rb *RingBuffer[T]) End() Iterator[T] {
	it := rb.iterator()
	it.offset = it.count
	return it
}

// iterator returns a position at the oldest element without marking the
// storage shared. Callers must either mark it or hold a scan.
func (rb *RingBuffer[T]) iterator() Iterator[T] {
	return Iterator[T]{rb: rb, data: rb.data, head: rb.head, count: rb.count}
}

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() (T, error) {
	if it.offset >= it.count {
		var zero T
		return zero, fmt.Errorf("value at offset %d: %w", it.offset, ErrIteratorExhausted)
	}
	return it.data[(it.head+it.offset)%len(it.data)], nil
}

// Next advances the iterator by one element. It stops at the end position.
func (it *Iterator[T]) Next() {
	if it.offset < it.count {
		it.offset++
	}
}

// Done reports whether the iterator is at the end position.
func (it Iterator[T]) Done() bool { return it.offset >= it.count }

// Offset returns the iterator's distance from the oldest element.
func (it Iterator[T]) Offset() int { return it.offset }

// Equal reports whether both iterators refer to the same buffer and the
// same position. All exhausted iterators of a buffer are equal, so a loop
// against a fresh End still terminates after the buffer changed length.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.rb != other.rb {
		return false
	}
	if it.Done() || other.Done() {
		return it.Done() && other.Done()
	}
	return it.offset == other.offset
}
