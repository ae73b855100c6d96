package circularbuffer

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types Sum and Mean accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the largest value in seq. The second result is false if seq
// yields nothing.
func Max[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	var best T
	found := false
	for v := range seq {
		if !found || cmp.Less(best, v) {
			best = v
			found = true
		}
	}
	return best, found
}

// Min returns the smallest value in seq. The second result is false if seq
// yields nothing.
func Min[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	var best T
	found := false
	for v := range seq {
		if !found || cmp.Less(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

// Sum adds up every value in seq.
func Sum[T Number](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean of seq, accumulated in float64.
// The second result is false if seq yields nothing.
func Mean[T Number](seq iter.Seq[T]) (float64, bool) {
	var total float64
	n := 0
	for v := range seq {
		total += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}
