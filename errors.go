package circularbuffer

import "errors"

var (
	// ErrInvalidCapacity is returned by New when the requested capacity is not positive.
	ErrInvalidCapacity = errors.New("circularbuffer: capacity must be positive")

	// ErrEmpty is returned by Front and Back when the buffer holds no elements.
	ErrEmpty = errors.New("circularbuffer: buffer is empty")

	// ErrOutOfRange is returned by At for a logical index outside [0, Len()).
	ErrOutOfRange = errors.New("circularbuffer: index out of range")

	// ErrIteratorExhausted is returned when dereferencing an iterator at its end position.
	ErrIteratorExhausted = errors.New("circularbuffer: iterator exhausted")
)
