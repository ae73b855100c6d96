/*
Package circularbuffer provides a generic, fixed-capacity circular buffer.

The RingBuffer holds at most a fixed number of elements. When it is full,
pushing a new element evicts the oldest one. Elements are always observed in
logical order, oldest to newest, no matter where they sit in the underlying
storage.

It uses Go's generics, allowing it to store elements of any type. A RingBuffer
is not safe for concurrent use; wrap it with a mutex if goroutines share it.

Usage:

Create a buffer with a positive capacity:

	rb, err := circularbuffer.New[float64](5)
	if err != nil {
		// errors.Is(err, circularbuffer.ErrInvalidCapacity)
	}

Push readings; the sixth one overwrites the first:

	for _, v := range []float64{23.5, 24.1, 23.8, 25.2, 24.7, 26.1} {
		rb.PushBack(v)
	}
	front, _ := rb.Front() // 24.1
	back, _ := rb.Back()   // 26.1

Front and Back return ErrEmpty on an empty buffer. PopFront on an empty buffer
is a no-op that reports false.

Iteration:

All returns an iter.Seq, so the buffer works with range and with any function
that consumes a sequence, including the reductions in this package:

	for v := range rb.All() {
		fmt.Println(v)
	}
	maxTemp, _ := circularbuffer.Max(rb.All())
	avgTemp, _ := circularbuffer.Mean(rb.All())

Begin and End give explicit offset-based iterators. Iterators are snapshots:
mutating the buffer after an iterator was created does not change what that
iterator yields. Every exhausted iterator of a buffer equals End, so the loop
below stops after the snapshot even if the body changes the buffer's length.

	for it := rb.Begin(); !it.Equal(rb.End()); it.Next() {
		v, _ := it.Value()
		fmt.Println(v)
	}

Automatic Cleanup:

Types that require cleanup (e.g., to release file handles or network connections)
can implement the `Cleanable` interface. The `Cleanup()` method is called when an
element is overwritten by PushBack on a full buffer, or when Reset is called.
Elements returned by PopFront or Drain belong to the caller and are not cleaned up.
*/
package circularbuffer
