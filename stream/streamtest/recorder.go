// Package streamtest records stream events for tests.
package streamtest

import (
	"fmt"
	"slices"

	"github.com/delaneyj/cellparty/cell"
	"github.com/delaneyj/cellparty/stream"
)

// Event is one structural event as seen by a Recorder.
type Event struct {
	Op    string
	Index int
}

func (e Event) String() string {
	return fmt.Sprintf("%s@%d", e.Op, e.Index)
}

// Insert and Remove build expected events.
func Insert(i int) Event { return Event{Op: "insert", Index: i} }
func Remove(i int) Event { return Event{Op: "remove", Index: i} }

// Recorder subscribes to a stream, logs every event and mirrors the stream's
// item cells and keys so tests can compare the reconstructed state.
type Recorder[V, K any] struct {
	events []Event
	items  []cell.Cell[V]
	keys   []K
	stop   cell.Unsubscribe
}

// Record subscribes to s. The replay is logged like any other insert.
func Record[V, K any](s stream.Stream[V, K]) *Recorder[V, K] {
	r := &Recorder[V, K]{}
	r.stop = s.Observe(r.insert, r.remove)
	return r
}

func (r *Recorder[V, K]) insert(i int, item cell.Cell[V], key K) {
	r.events = append(r.events, Insert(i))
	r.items = slices.Insert(r.items, i, item)
	r.keys = slices.Insert(r.keys, i, key)
}

func (r *Recorder[V, K]) remove(i int) {
	r.events = append(r.events, Remove(i))
	r.items = slices.Delete(r.items, i, i+1)
	r.keys = slices.Delete(r.keys, i, i+1)
}

// Events returns a copy of the events logged so far.
func (r *Recorder[V, K]) Events() []Event {
	return slices.Clone(r.events)
}

// Reset forgets the logged events but keeps the mirrored state.
func (r *Recorder[V, K]) Reset() {
	r.events = nil
}

// Values reads every mirrored item cell.
func (r *Recorder[V, K]) Values() []V {
	out := make([]V, len(r.items))
	for i, item := range r.items {
		out[i] = item.Value()
	}
	return out
}

func (r *Recorder[V, K]) Items() []cell.Cell[V] {
	return slices.Clone(r.items)
}

func (r *Recorder[V, K]) Keys() []K {
	return slices.Clone(r.keys)
}

// Stop unsubscribes. It is safe to call more than once.
func (r *Recorder[V, K]) Stop() {
	r.stop()
}
