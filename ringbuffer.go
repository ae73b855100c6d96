package circularbuffer

import (
	"fmt"
	"iter"
)

// Cleanable is an interface for types that require explicit cleanup
// when the RingBuffer drops them on its own, either by overwriting the
// oldest element of a full buffer or by Reset.
type Cleanable interface {
	// Cleanup performs any necessary resource release.
	Cleanup()
}

// RingBuffer is a generic fixed-capacity circular buffer. Pushing into a
// full buffer evicts the oldest element. It is not safe for concurrent use;
// callers that share a buffer across goroutines must synchronize access.
type RingBuffer[T any] struct {
	data []T
	// head is the physical index of the oldest element. It is meaningless
	// while count is zero.
	head int
	// count is the number of live elements, 0 <= count <= len(data).
	count int
	// shared is set once an iterator from Begin may still be reading data.
	// The next mutation copies the storage before touching it.
	shared bool
	// scans counts All and Backward loops still running over data. Unlike
	// shared, it drops back once those loops return.
	scans int
}

// New creates a RingBuffer that holds at most capacity elements.
// It returns ErrInvalidCapacity if capacity is less than 1.
func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("new ring buffer with capacity %d: %w", capacity, ErrInvalidCapacity)
	}
	return &RingBuffer[T]{data: make([]T, capacity)}, nil
}

// MustNew is like New but panics if capacity is invalid.
func MustNew[T any](capacity int) *RingBuffer[T] {
	rb, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return rb
}

// advanceHead moves head one slot forward, wrapping at capacity.
func (rb *RingBuffer[T]) advanceHead() {
	rb.head = (rb.head + 1) % len(rb.data)
}

// advanceTail returns the physical slot that follows the current tail.
func (rb *RingBuffer[T]) advanceTail() int {
	return (rb.head + rb.count) % len(rb.data)
}

// tail is the physical index of the newest element. Only valid when count > 0.
func (rb *RingBuffer[T]) tail() int {
	return (rb.head + rb.count - 1) % len(rb.data)
}

// unshare gives the buffer a private copy of its storage if an iterator
// might still be reading the current one. Only the live range is copied.
func (rb *RingBuffer[T]) unshare() {
	if !rb.shared && rb.scans == 0 {
		return
	}
	data := make([]T, len(rb.data))
	end := rb.head + rb.count
	if end <= len(rb.data) {
		copy(data[rb.head:end], rb.data[rb.head:end])
	} else {
		copy(data[rb.head:], rb.data[rb.head:])
		copy(data[:end-len(rb.data)], rb.data[:end-len(rb.data)])
	}
	rb.data = data
	rb.shared = false
	rb.scans = 0
}

// scan starts a loop-scoped read of the current storage. The returned
// func ends it; running loops over a block the buffer has since left are
// not counted.
func (rb *RingBuffer[T]) scan() (Iterator[T], func()) {
	it := rb.iterator()
	if it.count == 0 {
		return it, func() {}
	}
	rb.scans++
	return it, func() {
		if &rb.data[0] == &it.data[0] && rb.scans > 0 {
			rb.scans--
		}
	}
}

// PushBack appends item as the newest element. If the buffer is full the
// oldest element is evicted first, and its Cleanup method is called if it
// implements Cleanable.
//
// PushBack is O(1) except for the first mutation after Begin, or during an
// All or Backward loop, which copies the live elements to fresh storage.
func (rb *RingBuffer[T]) PushBack(item T) {
	rb.unshare()
	if rb.count == len(rb.data) {
		if cleanable, ok := any(rb.data[rb.head]).(Cleanable); ok {
			cleanable.Cleanup()
		}
		rb.advanceHead()
		rb.count--
	}
	rb.data[rb.advanceTail()] = item
	rb.count++
}

// PopFront removes and returns the oldest element. On an empty buffer it
// does nothing and returns the zero value and false. The removed element
// is handed to the caller, so Cleanup is not called on it.
func (rb *RingBuffer[T]) PopFront() (T, bool) {
	var zero T
	if rb.count == 0 {
		return zero, false
	}
	rb.unshare()
	item := rb.data[rb.head]
	rb.data[rb.head] = zero
	rb.advanceHead()
	rb.count--
	return item, true
}

// Front returns the oldest element, or ErrEmpty.
func (rb *RingBuffer[T]) Front() (T, error) {
	if rb.count == 0 {
		var zero T
		return zero, fmt.Errorf("front: %w", ErrEmpty)
	}
	return rb.data[rb.head], nil
}

// Back returns the newest element, or ErrEmpty.
func (rb *RingBuffer[T]) Back() (T, error) {
	if rb.count == 0 {
		var zero T
		return zero, fmt.Errorf("back: %w", ErrEmpty)
	}
	return rb.data[rb.tail()], nil
}

// At returns the element at logical index i, where 0 is the oldest.
func (rb *RingBuffer[T]) At(i int) (T, error) {
	if i < 0 || i >= rb.count {
		var zero T
		return zero, fmt.Errorf("at %d (len %d): %w", i, rb.count, ErrOutOfRange)
	}
	return rb.data[(rb.head+i)%len(rb.data)], nil
}

// Len returns the number of elements in the buffer.
func (rb *RingBuffer[T]) Len() int { return rb.count }

// Cap returns the fixed capacity of the buffer.
func (rb *RingBuffer[T]) Cap() int { return len(rb.data) }

// IsEmpty reports whether the buffer holds no elements.
func (rb *RingBuffer[T]) IsEmpty() bool { return rb.count == 0 }

// IsFull reports whether the next PushBack will evict an element.
func (rb *RingBuffer[T]) IsFull() bool { return rb.count == len(rb.data) }

// Slice returns a copy of the elements ordered from oldest to newest.
// It returns nil for an empty buffer.
func (rb *RingBuffer[T]) Slice() []T {
	if rb.count == 0 {
		return nil
	}
	items := make([]T, rb.count)
	end := rb.head + rb.count
	if end <= len(rb.data) {
		copy(items, rb.data[rb.head:end])
	} else { // Wrapped
		copied := copy(items, rb.data[rb.head:])
		copy(items[copied:], rb.data[:end-len(rb.data)])
	}
	return items
}

// Drain removes all elements and returns them ordered from oldest to newest.
// Cleanup is not called on the returned elements.
func (rb *RingBuffer[T]) Drain() []T {
	items := rb.Slice()
	rb.discard()
	return items
}

// Reset empties the buffer, calling Cleanup on every element that
// implements Cleanable. Iterators created before Reset still yield the
// dropped elements.
func (rb *RingBuffer[T]) Reset() {
	for i := 0; i < rb.count; i++ {
		if cleanable, ok := any(rb.data[(rb.head+i)%len(rb.data)]).(Cleanable); ok {
			cleanable.Cleanup()
		}
	}
	rb.discard()
}

func (rb *RingBuffer[T]) discard() {
	if rb.shared || rb.scans > 0 {
		// Iterators keep the old block; start over with a fresh one.
		rb.data = make([]T, len(rb.data))
		rb.shared = false
		rb.scans = 0
	} else {
		clear(rb.data)
	}
	rb.head = 0
	rb.count = 0
}

// Clone returns a deep copy of the buffer. The copy shares no storage
// with rb.
func (rb *RingBuffer[T]) Clone() *RingBuffer[T] {
	data := make([]T, len(rb.data))
	copy(data, rb.data)
	return &RingBuffer[T]{
		data:  data,
		head:  rb.head,
		count: rb.count,
	}
}

// All returns a sequence over the elements from oldest to newest. The
// sequence is evaluated against the buffer as it is when ranging starts;
// mutating the buffer inside the loop does not change the remaining values.
func (rb *RingBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it, done := rb.scan()
		defer done()
		for ; !it.Done(); it.Next() {
			v, _ := it.Value()
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a sequence of logical index and element pairs from
// newest to oldest. Like All, it observes the buffer as it is when ranging
// starts.
func (rb *RingBuffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it, done := rb.scan()
		defer done()
		for i := it.count - 1; i >= 0; i-- {
			if !yield(i, it.data[(it.head+i)%len(it.data)]) {
				return
			}
		}
	}
}

// String formats the elements in logical order, e.g. "[1 2 3]".
func (rb *RingBuffer[T]) String() string {
	return fmt.Sprint(rb.Slice())
}
