package stream

import "github.com/delaneyj/cellparty/cell"

// FilterMappedIndexes subscribes a filter and exposes the output position of
// every source item, in source order.
func FilterMappedIndexes[V, K any](s Stream[V, K], pred func(V) bool) (func() []int, cell.Unsubscribe) {
	sub := &filterSub[V, K]{
		pred:   func(v V, _ K) bool { return pred(v) },
		insert: func(int, cell.Cell[V], K) {},
		remove: func(int) {},
	}
	stop := sub.start(s)
	return func() []int {
		out := make([]int, len(sub.records))
		for i, rec := range sub.records {
			out[i] = rec.mappedIndex
		}
		return out
	}, stop
}
