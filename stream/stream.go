package stream

import (
	"github.com/delaneyj/cellparty/cell"
)

// InsertFunc receives an item cell entering the stream at index.
type InsertFunc[V, K any] func(index int, item cell.Cell[V], key K)

// RemoveFunc receives the index of an item leaving the stream.
type RemoveFunc func(index int)

// Stream is an ordered collection observed through structural events.
//
// Observe must call insert for every entry currently held, in index order,
// before it returns, and then report later changes as they happen. A late
// subscriber can therefore rebuild the full state from events alone.
type Stream[V, K any] interface {
	Observe(insert InsertFunc[V, K], remove RemoveFunc) cell.Unsubscribe
}

// Key identifies a CellArray slot for as long as it exists.
type Key uint64

// Len returns a cell holding the number of entries in s. Reading it while
// unobserved subscribes and immediately unsubscribes to count the replay.
func Len[V, K any](s Stream[V, K]) cell.Cell[int] {
	return cell.NewDerived(
		func() int {
			n := 0
			stop := s.Observe(func(int, cell.Cell[V], K) { n++ }, func(int) {})
			stop()
			return n
		},
		func(emit func(int)) func() {
			n := 0
			replaying := true
			stop := s.Observe(
				func(int, cell.Cell[V], K) {
					n++
					if !replaying {
						emit(n)
					}
				},
				func(int) {
					n--
					emit(n)
				},
			)
			replaying = false
			return stop
		},
	)
}

// Snapshot returns the current values of s in order.
func Snapshot[V, K any](s Stream[V, K]) []V {
	var items []cell.Cell[V]
	stop := s.Observe(
		func(i int, item cell.Cell[V], _ K) {
			items = append(items, nil)
			copy(items[i+1:], items[i:])
			items[i] = item
		},
		func(i int) {
			items = append(items[:i], items[i+1:]...)
		},
	)
	stop()

	out := make([]V, len(items))
	for i, item := range items {
		out[i] = item.Value()
	}
	return out
}
