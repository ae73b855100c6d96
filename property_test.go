package circularbuffer

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/eapache/queue"
)

// queueContents returns the elements of the reference queue, oldest first.
func queueContents(q *queue.Queue) []int {
	if q.Length() == 0 {
		return nil
	}
	out := make([]int, q.Length())
	for i := range out {
		out[i] = q.Get(i).(int)
	}
	return out
}

// TestRingPropertyBased performs randomized operations and compares the buffer against
// an unbounded FIFO queue that is trimmed to capacity after each push.
func TestRingPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		capacity := 1 + rng.Intn(16)
		rb := MustNew[int](capacity)
		model := queue.New()

		for i := 0; i < 2000; i++ {
			switch op := rng.Intn(10); {
			case op < 6:
				val := rng.Intn(100000)
				var oldest int
				wasFull := rb.IsFull()
				if wasFull {
					oldest, _ = rb.Front()
				}

				rb.PushBack(val)
				model.Add(val)
				if model.Length() > capacity {
					evicted := model.Remove().(int)
					if !wasFull || evicted != oldest {
						t.Fatalf("seed %d step %d: model evicted %d, buffer front was %d (full=%v)", seed, i, evicted, oldest, wasFull)
					}
				}
				if back, err := rb.Back(); err != nil || back != val {
					t.Fatalf("seed %d step %d: expected back %d, got %d (%v)", seed, i, val, back, err)
				}
			case op < 9:
				got, ok := rb.PopFront()
				if model.Length() == 0 {
					if ok {
						t.Fatalf("seed %d step %d: pop on empty buffer returned %d", seed, i, got)
					}
					continue
				}
				want := model.Remove().(int)
				if !ok || got != want {
					t.Fatalf("seed %d step %d: expected pop (%d, true), got (%d, %v)", seed, i, want, got, ok)
				}
			default:
				// Hold an iterator across the next mutations to exercise the copy path.
				_ = rb.Begin()
			}

			if rb.Len() > rb.Cap() {
				t.Fatalf("seed %d step %d: len %d exceeds cap %d", seed, i, rb.Len(), rb.Cap())
			}
			if rb.Len() != model.Length() {
				t.Fatalf("seed %d step %d: expected len %d, got %d", seed, i, model.Length(), rb.Len())
			}
			if rb.Len() > 0 {
				if front, _ := rb.Front(); front != model.Peek().(int) {
					t.Fatalf("seed %d step %d: expected front %d, got %d", seed, i, model.Peek(), front)
				}
			}
			if got, want := rb.Slice(), queueContents(model); !reflect.DeepEqual(got, want) {
				t.Fatalf("seed %d step %d: expected %v, got %v", seed, i, want, got)
			}
		}
	}
}

// TestCursorInvariants checks head and tail bounds and the tail formula after every operation.
func TestCursorInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rb := MustNew[int](7)
	for i := 0; i < 5000; i++ {
		if rng.Intn(3) == 0 {
			rb.PopFront()
		} else {
			rb.PushBack(i)
		}
		if rb.head < 0 || rb.head >= rb.Cap() {
			t.Fatalf("step %d: head %d out of range", i, rb.head)
		}
		if rb.count == 0 {
			continue
		}
		tail := rb.tail()
		if tail < 0 || tail >= rb.Cap() {
			t.Fatalf("step %d: tail %d out of range", i, tail)
		}
		if back, _ := rb.Back(); back != rb.data[tail] {
			t.Fatalf("step %d: Back() %d does not match slot %d", i, back, tail)
		}
	}
}
