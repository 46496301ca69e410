package cell

//go:generate go run ../cmd/codegen --count 6 --out zip_gen.go

// ZipWith combines a fixed list of cells with f. Each change of any source
// recomputes and notifies once; writes to several sources in a row produce
// one notification per write.
func ZipWith[S, T any](cs []Cell[S], f func([]S) T) Cell[T] {
	srcs := append([]Cell[S](nil), cs...)
	values := func() []S {
		out := make([]S, len(srcs))
		for i, c := range srcs {
			out[i] = c.Value()
		}
		return out
	}
	deps := make([]Dependency, len(srcs))
	for i, c := range srcs {
		deps[i] = c
	}
	return zipDeps("zip", deps, func() T {
		return f(values())
	})
}

// Zip combines cells into a cell of their values, in order.
func Zip[S any](cs ...Cell[S]) Cell[[]S] {
	return ZipWith(cs, func(vs []S) []S {
		return vs
	})
}

// zipDeps is the shared engine behind every Zip flavour: subscribe to all
// deps while active and recompute value on any change.
func zipDeps[T any](kind string, deps []Dependency, value func() T) *derived[T] {
	return newDerived(kind, value, func(emit func(T)) func() {
		unsubs := make([]Unsubscribe, len(deps))
		for i, dep := range deps {
			unsubs[i] = dep.OnChange(func() {
				emit(value())
			})
		}
		return func() {
			for _, unsub := range unsubs {
				unsub()
			}
		}
	})
}
