package stream

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/delaneyj/cellparty/cell"
)

type change[V, K any] struct {
	removed bool
	index   int
	item    cell.Cell[V]
	key     K
}

// CellArray is an ordered collection of item cells. Item cells keep their
// identity while they move; only their value or position changes.
type CellArray[T any] struct {
	list    *cell.Var[[]*cell.Var[T]]
	keys    []Key
	nextKey Key
	events  *cell.Emitter[change[T, Key]]
	length  cell.Cell[int]
	values  cell.Cell[[]T]
}

// NewCellArray returns a CellArray holding items.
func NewCellArray[T any](items ...T) *CellArray[T] {
	a := &CellArray[T]{
		events: cell.NewEmitter[change[T, Key]](nil, nil),
	}
	slots := make([]*cell.Var[T], len(items))
	a.keys = make([]Key, len(items))
	for i, v := range items {
		slots[i] = cell.New(v)
		a.keys[i] = a.newKey()
	}
	a.list = cell.New(slots)
	a.length = cell.Map(a.list, func(s []*cell.Var[T]) int {
		return len(s)
	})
	a.values = cell.Computed(func(tr *cell.Tracker) []T {
		slots := cell.Unwrap[[]*cell.Var[T]](tr, a.list)
		out := make([]T, len(slots))
		for i, s := range slots {
			out[i] = cell.Unwrap[T](tr, s)
		}
		return out
	}, cell.WithPruning())
	return a
}

func (a *CellArray[T]) newKey() Key {
	a.nextKey++
	return a.nextKey
}

// Cell is the container cell. It notifies after every structural change; the
// slice it carries must not be modified.
func (a *CellArray[T]) Cell() cell.Cell[[]*cell.Var[T]] {
	return a.list
}

// Len is the number of items, as a cell.
func (a *CellArray[T]) Len() cell.Cell[int] {
	return a.length
}

// Values is a cell of every item's value. It notifies on structural changes
// and on writes to any item.
func (a *CellArray[T]) Values() cell.Cell[[]T] {
	return a.values
}

// Items returns the item cells in order.
func (a *CellArray[T]) Items() []*cell.Var[T] {
	return slices.Clone(a.list.Value())
}

// Keys returns the slot keys in order.
func (a *CellArray[T]) Keys() []Key {
	return slices.Clone(a.keys)
}

// All iterates over the current values.
func (a *CellArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range a.list.Value() {
			if !yield(i, item.Value()) {
				return
			}
		}
	}
}

func (a *CellArray[T]) Get(index int) (T, bool) {
	slots := a.list.Value()
	if index < 0 || index >= len(slots) {
		var zero T
		return zero, false
	}
	return slots[index].Value(), true
}

// Set replaces the value of the item at index, notifying that item's
// observers. It is not a structural change.
func (a *CellArray[T]) Set(index int, v T) error {
	slots := a.list.Value()
	if index < 0 || index >= len(slots) {
		return fmt.Errorf("set %d of %d: %w", index, len(slots), ErrIndexOutOfRange)
	}
	slots[index].Set(v)
	return nil
}

// Update mutates the item at index in place and notifies its observers.
// It reports false, doing nothing, when index is out of range.
func (a *CellArray[T]) Update(index int, fn func(v *T)) bool {
	slots := a.list.Value()
	if index < 0 || index >= len(slots) {
		return false
	}
	slots[index].Update(fn)
	return true
}

// Push appends v. Observers see the insert event before the length changes.
func (a *CellArray[T]) Push(v T) {
	a.insertAt(len(a.keys), v)
}

// Insert places v at index, shifting later items up by one.
// Valid indexes run from 0 to the current length inclusive.
func (a *CellArray[T]) Insert(index int, v T) error {
	if index < 0 || index > len(a.keys) {
		return fmt.Errorf("insert %d of %d: %w", index, len(a.keys), ErrIndexOutOfRange)
	}
	a.insertAt(index, v)
	return nil
}

func (a *CellArray[T]) insertAt(index int, v T) {
	item := cell.New(v)
	key := a.newKey()
	a.list.Mutate(func(s *[]*cell.Var[T]) {
		*s = slices.Insert(*s, index, item)
	})
	a.keys = slices.Insert(a.keys, index, key)
	logger().Debug("array insert", slog.Int("index", index), slog.Int("len", len(a.keys)))

	a.events.Emit(change[T, Key]{index: index, item: item, key: key})
	a.list.Notify()
}

// Remove deletes the item at index and returns its value. Out of range it
// returns false and emits nothing.
func (a *CellArray[T]) Remove(index int) (T, bool) {
	slots := a.list.Value()
	if index < 0 || index >= len(slots) {
		var zero T
		return zero, false
	}
	item := slots[index]
	a.list.Mutate(func(s *[]*cell.Var[T]) {
		*s = slices.Delete(*s, index, index+1)
	})
	a.keys = slices.Delete(a.keys, index, index+1)
	logger().Debug("array remove", slog.Int("index", index), slog.Int("len", len(a.keys)))

	a.events.Emit(change[T, Key]{removed: true, index: index})
	a.list.Notify()
	return item.Value(), true
}

// Pop removes the last item.
func (a *CellArray[T]) Pop() (T, bool) {
	return a.Remove(len(a.keys) - 1)
}

// Clear removes every item, last first.
func (a *CellArray[T]) Clear() {
	for len(a.keys) > 0 {
		a.Remove(len(a.keys) - 1)
	}
}

// ReplaceAll reconciles the array with items by position, not by identity.
// Trailing extra items are removed first, then the overlapping prefix is
// overwritten in place where replace is nil or returns true, then the rest of
// items is pushed. Surviving item cells keep their identity.
func (a *CellArray[T]) ReplaceAll(items []T, replace func(old, new T) bool) {
	for len(a.keys) > len(items) {
		a.Remove(len(a.keys) - 1)
	}

	slots := a.list.Value()
	for i, slot := range slots {
		if replace == nil || replace(slot.Value(), items[i]) {
			slot.Set(items[i])
		}
	}

	for _, v := range items[len(slots):] {
		a.Push(v)
	}
}

// Observe replays every item and then streams structural changes.
func (a *CellArray[T]) Observe(insert InsertFunc[T, Key], remove RemoveFunc) cell.Unsubscribe {
	for i, item := range a.list.Value() {
		insert(i, item, a.keys[i])
	}
	return a.events.ObserveFunc(func(c change[T, Key]) {
		if c.removed {
			remove(c.index)
			return
		}
		insert(c.index, c.item, c.key)
	})
}
