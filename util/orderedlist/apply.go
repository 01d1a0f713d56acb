package orderedlist

// Apply calls fn on each value in [first, last).
func Apply[T any](first, last Iterator[T], fn func(T)) {
	for ; first != last; first = first.Next() {
		fn(first.Value())
	}
}

// ApplyArg calls fn on each value in [first, last) with arg as the second
// argument.
func ApplyArg[T, A any](first, last Iterator[T], fn func(T, A), arg A) {
	for ; first != last; first = first.Next() {
		fn(first.Value(), arg)
	}
}

// ApplyArgRef is ApplyArg with arg shared by reference, so fn may update it.
func ApplyArgRef[T, A any](first, last Iterator[T], fn func(T, *A), arg *A) {
	for ; first != last; first = first.Next() {
		fn(first.Value(), arg)
	}
}

// ApplyIf calls pred on each value in [first, last) until it returns true.
// It reports whether any call did.
func ApplyIf[T any](first, last Iterator[T], pred func(T) bool) bool {
	for ; first != last; first = first.Next() {
		if pred(first.Value()) {
			return true
		}
	}
	return false
}

func ApplyIfArg[T, A any](first, last Iterator[T], pred func(T, A) bool, arg A) bool {
	for ; first != last; first = first.Next() {
		if pred(first.Value(), arg) {
			return true
		}
	}
	return false
}
