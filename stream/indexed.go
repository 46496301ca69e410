package stream

import (
	"slices"

	"github.com/delaneyj/cellparty/cell"
)

// Index is the key of an Indexed stream: the source key plus a live cell
// holding the item's current position.
type Index[K any] struct {
	Key K
	Pos cell.Cell[int]
}

// Indexed gives every item a position cell that follows the item as earlier
// items are inserted or removed. The cell is seeded with the insertion index.
func Indexed[V, K any](s Stream[V, K]) Stream[V, Index[K]] {
	return StreamFunc[V, Index[K]](func(insert InsertFunc[V, Index[K]], remove RemoveFunc) cell.Unsubscribe {
		var positions []*cell.Var[int]
		return s.Observe(
			func(i int, item cell.Cell[V], key K) {
				for _, p := range positions[i:] {
					p.Update(func(v *int) { *v++ })
				}
				pos := cell.New(i)
				positions = slices.Insert(positions, i, pos)
				insert(i, item, Index[K]{Key: key, Pos: pos})
			},
			func(i int) {
				positions = slices.Delete(positions, i, i+1)
				for _, p := range positions[i:] {
					p.Update(func(v *int) { *v-- })
				}
				remove(i)
			},
		)
	})
}
