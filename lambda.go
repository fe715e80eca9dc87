package purekata

import (
	"context"
	"iter"
)

// ============================================================================
// Functions as Values
// ============================================================================

// Compose returns g after f.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Curry turns a two-argument function into a chain of one-argument functions.
//
// Example:
//
//	mul := func(x, y int) int { return x * y }
//	doubler := Curry(mul)(2)
//	doubler(4) // 8
func Curry[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

// Partial fixes the first argument of f.
func Partial[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// ============================================================================
// Lazy Sequences
// ============================================================================

// Naturals yields from, from+1, ... until the consumer stops.
func Naturals(from int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := from; ; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// MapSeq applies f lazily.
func MapSeq[A, B any](seq iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// FilterSeq keeps matching values lazily.
func FilterSeq[T any](seq iter.Seq[T], keep Predicate[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// TakeSeq stops seq after n values.
func TakeSeq[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			taken++
			if taken == n {
				return
			}
		}
	}
}

// ReduceSeq folds seq without materializing it.
func ReduceSeq[T, R any](seq iter.Seq[T], acc R, step func(R, T) R) R {
	for v := range seq {
		acc = step(acc, v)
	}
	return acc
}

// WithContext ends seq once ctx is done. Callers check ctx.Err() to tell
// a cancelled sequence from a finished one.
func WithContext[T any](ctx context.Context, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		done := ctx.Done()
		for v := range seq {
			select {
			case <-done:
				return
			default:
			}
			if !yield(v) {
				return
			}
		}
	}
}

// maxPrealloc bounds what First reserves up front; n comes from input.
const maxPrealloc = 1 << 10

// First pulls at most n values from seq. It is the only place a lazy
// pipeline is forced, so an infinite seq is fine. Storage grows with what
// is actually pulled, not with n.
func First[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, 0, min(n, maxPrealloc))
	for v := range TakeSeq(seq, n) {
		out = append(out, v)
	}
	return out
}
