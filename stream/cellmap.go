package stream

import (
	"log/slog"
	"slices"

	"github.com/delaneyj/cellparty/cell"
)

// CellMap is a keyed collection of item cells. Insertion order gives every
// entry a position, used only to translate key events into indexes.
type CellMap[K comparable, V any] struct {
	entries map[K]*cell.Var[V]
	order   *cell.Var[[]K]
	events  *cell.Emitter[change[V, K]]
	length  cell.Cell[int]

	// deleting holds the keys whose remove events are being dispatched. They
	// are left out of the replay for subscribers that attach meanwhile.
	deleting []K
}

func NewCellMap[K comparable, V any]() *CellMap[K, V] {
	m := &CellMap[K, V]{
		entries: map[K]*cell.Var[V]{},
		order:   cell.New[[]K](nil),
		events:  cell.NewEmitter[change[V, K]](nil, nil),
	}
	m.length = cell.Map(m.order, func(keys []K) int {
		return len(keys)
	})
	return m
}

// Len is the number of entries, as a cell.
func (m *CellMap[K, V]) Len() cell.Cell[int] {
	return m.length
}

// Keys returns the keys in insertion order.
func (m *CellMap[K, V]) Keys() []K {
	return slices.Clone(m.order.Value())
}

func (m *CellMap[K, V]) Get(key K) (V, bool) {
	item, ok := m.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return item.Value(), true
}

// Item returns the cell stored under key.
func (m *CellMap[K, V]) Item(key K) (cell.Cell[V], bool) {
	item, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return item, true
}

func (m *CellMap[K, V]) Has(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Set writes v under key. An existing key keeps its cell and only that cell
// notifies; a new key is appended and emits an insert.
func (m *CellMap[K, V]) Set(key K, v V) {
	if item, ok := m.entries[key]; ok {
		item.Set(v)
		return
	}

	item := cell.New(v)
	m.entries[key] = item
	m.order.Mutate(func(keys *[]K) {
		*keys = append(*keys, key)
	})
	logger().Debug("map insert", slog.Any("key", key), slog.Int("len", len(m.entries)))

	m.events.Emit(change[V, K]{item: item, key: key})
	m.order.Notify()
}

// Update mutates the value under key in place. It reports false when the key
// is absent.
func (m *CellMap[K, V]) Update(key K, fn func(v *V)) bool {
	item, ok := m.entries[key]
	if !ok {
		return false
	}
	item.Update(fn)
	return true
}

// Delete emits a remove at the key's current position and then drops it.
func (m *CellMap[K, V]) Delete(key K) bool {
	if _, ok := m.entries[key]; !ok {
		return false
	}
	logger().Debug("map delete", slog.Any("key", key), slog.Int("len", len(m.entries)-1))

	m.deleting = append(m.deleting, key)
	m.events.Emit(change[V, K]{removed: true, key: key})
	m.deleting = m.deleting[:len(m.deleting)-1]
	delete(m.entries, key)
	m.order.Mutate(func(keys *[]K) {
		if i := slices.Index(*keys, key); i >= 0 {
			*keys = slices.Delete(*keys, i, i+1)
		}
	})
	m.order.Notify()
	return true
}

// Clear deletes every entry, oldest first.
func (m *CellMap[K, V]) Clear() {
	for _, key := range m.Keys() {
		m.Delete(key)
	}
}

// Observe replays the entries in insertion order and then streams changes.
// Each subscription keeps its own key order so that it can turn key events
// into indexes that are correct for what it has been told so far.
func (m *CellMap[K, V]) Observe(insert InsertFunc[V, K], remove RemoveFunc) cell.Unsubscribe {
	order := slices.DeleteFunc(m.Keys(), func(key K) bool {
		return slices.Contains(m.deleting, key)
	})
	for i, key := range order {
		insert(i, m.entries[key], key)
	}
	return m.events.ObserveFunc(func(c change[V, K]) {
		if c.removed {
			i := slices.Index(order, c.key)
			if i < 0 {
				return
			}
			order = slices.Delete(order, i, i+1)
			remove(i)
			return
		}
		order = append(order, c.key)
		insert(len(order)-1, c.item, c.key)
	})
}
