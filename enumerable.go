package purekata

// ============================================================================
// Slice Combinators
// ============================================================================

// Map applies f to every element and returns the results in order.
func Map[A, B any](xs []A, f func(A) B) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Filter keeps the elements matching keep.
func Filter[T any](xs []T, keep Predicate[T]) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// Reduce folds xs into acc from left to right.
func Reduce[T, R any](xs []T, acc R, step func(R, T) R) R {
	for _, x := range xs {
		acc = step(acc, x)
	}
	return acc
}

// EachWithIndex calls fn with every element and its zero-based index.
func EachWithIndex[T any](xs []T, fn func(item T, index int)) {
	for i, x := range xs {
		fn(x, i)
	}
}

// Any reports whether p holds for at least one element.
func Any[T any](xs []T, p Predicate[T]) bool {
	for _, x := range xs {
		if p(x) {
			return true
		}
	}
	return false
}

// All reports whether p holds for every element. It is true for an empty slice.
func All[T any](xs []T, p Predicate[T]) bool {
	return !Any(xs, p.Not())
}

// None reports whether p holds for no element.
func None[T any](xs []T, p Predicate[T]) bool {
	return !Any(xs, p)
}

// Find returns the first element matching p.
func Find[T any](xs []T, p Predicate[T]) (T, bool) {
	for _, x := range xs {
		if p(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// Group is one bucket produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy buckets xs by key. Groups come back in the order their key was
// first seen and never contain zero items.
func GroupBy[T any, K comparable](xs []T, key func(T) K) []Group[K, T] {
	index := make(map[K]int)
	var groups []Group[K, T]
	for _, x := range xs {
		k := key(x)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, x)
	}
	return groups
}

// ============================================================================
// Predicates
// ============================================================================

// Predicate is a boolean test with boolean-algebra composition.
//
// Example:
//
//	small := Predicate[int](func(n int) bool { return n < 10 })
//	even := Predicate[int](func(n int) bool { return n%2 == 0 })
//	small.And(even)(4) // true
type Predicate[T any] func(T) bool

// And accepts when both p and other accept.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && other(v)
	}
}

// Or accepts when either p or other accepts.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || other(v)
	}
}

// Not negates p.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}
