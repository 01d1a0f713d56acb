package orderedlist

// Iterator designates a node of a List, or the position past the end.
// Iterators are comparable: two are equal when they designate the same node,
// and the zero value equals End(). An iterator stays valid across insertions
// and is invalidated by erasing its node or clearing its list.
type Iterator[T any] struct {
	node *node[T]
}

// Value returns the designated value. Calling it on End() panics.
func (it Iterator[T]) Value() T {
	return *it.Ref()
}

// Ref returns a pointer to the designated value. Changing the value in a way
// that moves it under the list's ordering leaves the list disordered.
func (it Iterator[T]) Ref() *T {
	if it.node == nil {
		panic("orderedlist: dereference of end iterator")
	}
	return &it.node.val
}

// Next returns an iterator to the following node.
func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil {
		panic("orderedlist: advance of end iterator")
	}
	return Iterator[T]{node: it.node.next}
}

// Advance moves it to the following node and returns its previous position.
func (it *Iterator[T]) Advance() Iterator[T] {
	saved := *it
	*it = it.Next()
	return saved
}

// Done reports whether it is past the end.
func (it Iterator[T]) Done() bool { return it.node == nil }
