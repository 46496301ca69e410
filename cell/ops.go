package cell

// Eq reports whether c currently holds v.
func Eq[T comparable](c Cell[T], v T) Cell[bool] {
	return Map(c, func(x T) bool {
		return x == v
	})
}

func Not(c Cell[bool]) Cell[bool] {
	return Map(c, func(b bool) bool {
		return !b
	})
}

func And(a, b Cell[bool]) Cell[bool] {
	return Zip2(a, b, func(x, y bool) bool {
		return x && y
	})
}

func Or(a, b Cell[bool]) Cell[bool] {
	return Zip2(a, b, func(x, y bool) bool {
		return x || y
	})
}

// Defined reports whether the optional value is present.
func Defined[T any](c Cell[*T]) Cell[bool] {
	return Map(c, func(v *T) bool {
		return v != nil
	})
}

// Undefined reports whether the optional value is absent.
func Undefined[T any](c Cell[*T]) Cell[bool] {
	return Map(c, func(v *T) bool {
		return v == nil
	})
}

// OrElse unwraps an optional value, substituting fallback when absent.
func OrElse[T any](c Cell[*T], fallback T) Cell[T] {
	return Map(c, func(v *T) T {
		if v == nil {
			return fallback
		}
		return *v
	})
}
