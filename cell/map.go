package cell

// Map derives a cell whose value is always f(c.Value()).
func Map[S, T any](c Cell[S], f func(S) T) Cell[T] {
	return newDerived("map",
		func() T {
			return f(c.Value())
		},
		func(emit func(T)) func() {
			return c.ObserveFunc(func(v S) {
				emit(f(v))
			})
		},
	)
}

// MapDefined is Map over an optional value: nil passes through as nil.
func MapDefined[S, T any](c Cell[*S], f func(S) T) Cell[*T] {
	return Map(c, func(v *S) *T {
		if v == nil {
			return nil
		}
		out := f(*v)
		return &out
	})
}

// FlatMap derives a cell whose value is f(c.Value()).Value().
//
// While active it follows the current intermediate cell. When c changes, the
// old intermediate is released, the new one is subscribed, and observers get a
// single notification carrying the new intermediate's value.
func FlatMap[S, T any](c Cell[S], f func(S) Cell[T]) Cell[T] {
	return newDerived("flatMap",
		func() T {
			return f(c.Value()).Value()
		},
		func(emit func(T)) func() {
			forward := Func(emit)
			inner := f(c.Value())
			unsubInner := inner.Observe(forward)

			unsubOuter := c.ObserveFunc(func(v S) {
				unsubInner()
				inner = f(v)
				unsubInner = inner.Observe(forward)
				emit(inner.Value())
			})

			return func() {
				unsubOuter()
				unsubInner()
			}
		},
	)
}
