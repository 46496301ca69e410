package stream

import (
	"slices"

	"github.com/delaneyj/cellparty/cell"
)

// filterRecord tracks one source item. Records are kept in source order;
// mappedIndex is the item's position in the filtered output, or -1.
type filterRecord[V, K any] struct {
	item        cell.Cell[V]
	key         K
	unsub       cell.Unsubscribe
	mappedIndex int
}

type filterSub[V, K any] struct {
	pred    func(V, K) bool
	records []*filterRecord[V, K]
	insert  InsertFunc[V, K]
	remove  RemoveFunc
}

// Filter keeps the items whose value satisfies pred. Items are re-tested
// whenever their value changes and enter or leave the output accordingly.
func Filter[V, K any](s Stream[V, K], pred func(V) bool) Stream[V, K] {
	return FilterKeyed(s, func(v V, _ K) bool {
		return pred(v)
	})
}

// FilterKeyed is Filter with access to the item's key. Only value changes
// trigger a re-test.
func FilterKeyed[V, K any](s Stream[V, K], pred func(V, K) bool) Stream[V, K] {
	return StreamFunc[V, K](func(insert InsertFunc[V, K], remove RemoveFunc) cell.Unsubscribe {
		sub := &filterSub[V, K]{pred: pred, insert: insert, remove: remove}
		return sub.start(s)
	})
}

func (f *filterSub[V, K]) start(s Stream[V, K]) cell.Unsubscribe {
	unsub := s.Observe(f.sourceInsert, f.sourceRemove)
	return func() {
		unsub()
		for _, rec := range f.records {
			rec.unsub()
		}
		f.records = nil
	}
}

func (f *filterSub[V, K]) sourceInsert(i int, item cell.Cell[V], key K) {
	rec := &filterRecord[V, K]{item: item, key: key, mappedIndex: -1}
	f.records = slices.Insert(f.records, i, rec)
	rec.unsub = cell.GetAndObserve(item, func(v V) {
		f.retest(rec, f.pred(v, rec.key))
	})
}

func (f *filterSub[V, K]) sourceRemove(i int) {
	rec := f.records[i]
	rec.unsub()
	if rec.mappedIndex >= 0 {
		f.exclude(i, rec)
	}
	f.records = slices.Delete(f.records, i, i+1)
}

func (f *filterSub[V, K]) retest(rec *filterRecord[V, K], include bool) {
	i := slices.Index(f.records, rec)
	if i < 0 {
		return
	}
	switch {
	case include && rec.mappedIndex < 0:
		f.include(i, rec)
	case !include && rec.mappedIndex >= 0:
		f.exclude(i, rec)
	}
}

// include places the record at source position i into the output right after
// the nearest included record before it, and shifts later included records.
func (f *filterSub[V, K]) include(i int, rec *filterRecord[V, K]) {
	at := 0
	for j := i - 1; j >= 0; j-- {
		if m := f.records[j].mappedIndex; m >= 0 {
			at = m + 1
			break
		}
	}
	rec.mappedIndex = at
	for _, r := range f.records[i+1:] {
		if r.mappedIndex >= 0 {
			r.mappedIndex++
		}
	}
	f.insert(at, rec.item, rec.key)
}

func (f *filterSub[V, K]) exclude(i int, rec *filterRecord[V, K]) {
	at := rec.mappedIndex
	rec.mappedIndex = -1
	for _, r := range f.records[i+1:] {
		if r.mappedIndex >= 0 {
			r.mappedIndex--
		}
	}
	f.remove(at)
}
