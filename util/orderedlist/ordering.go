package orderedlist

import (
	"cmp"
)

// Ordering is a strict weak ordering over T. Precedes reports whether a comes
// strictly before b. Two values for which neither precedes the other are
// treated as equal.
type Ordering[T any] interface {
	Precedes(a, b T) bool
}

// Lesser is implemented by types carrying their own natural order.
type Lesser[T any] interface {
	Less(T) bool
}

// Ascending orders values smallest to largest with the < operator.
type Ascending[T cmp.Ordered] struct{}

func (Ascending[T]) Precedes(a, b T) bool { return a < b }

// ByLess orders values with their own Less method.
type ByLess[T Lesser[T]] struct{}

func (ByLess[T]) Precedes(a, b T) bool { return a.Less(b) }

// ByPointee orders pointers by the values they point to. The list never
// frees or otherwise manages the pointees.
type ByPointee[T Lesser[T]] struct{}

func (ByPointee[T]) Precedes(a, b *T) bool { return (*a).Less(*b) }

// Func adapts a plain function to an Ordering. Its zero value is unusable, so
// lists ordered by a Func must be built with NewWithOrdering.
type Func[T any] func(a, b T) bool

func (f Func[T]) Precedes(a, b T) bool { return f(a, b) }
