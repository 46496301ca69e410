package stream

import (
	"github.com/delaneyj/cellparty/cell"
)

// StreamFunc adapts a function to the Stream interface.
type StreamFunc[V, K any] func(insert InsertFunc[V, K], remove RemoveFunc) cell.Unsubscribe

func (f StreamFunc[V, K]) Observe(insert InsertFunc[V, K], remove RemoveFunc) cell.Unsubscribe {
	return f(insert, remove)
}

// Map transforms every item cell with cell.Map. Structure passes through.
func Map[V, W, K any](s Stream[V, K], f func(V) W) Stream[W, K] {
	return StreamFunc[W, K](func(insert InsertFunc[W, K], remove RemoveFunc) cell.Unsubscribe {
		return s.Observe(
			func(i int, item cell.Cell[V], key K) {
				insert(i, cell.Map(item, f), key)
			},
			remove,
		)
	})
}

// MapKey transforms keys only.
func MapKey[V, K, J any](s Stream[V, K], f func(K) J) Stream[V, J] {
	return StreamFunc[V, J](func(insert InsertFunc[V, J], remove RemoveFunc) cell.Unsubscribe {
		return s.Observe(
			func(i int, item cell.Cell[V], key K) {
				insert(i, item, f(key))
			},
			remove,
		)
	})
}
