package cell

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Tracker collects the cells unwrapped during one evaluation of a Computed
// function. Each evaluation gets a fresh Tracker, so nothing leaks into the
// next evaluation or into an unrelated computation, even when fn panics.
type Tracker struct {
	seen mapset.Set[Dependency]
	deps []Dependency
}

func newTracker() *Tracker {
	return &Tracker{seen: mapset.NewThreadUnsafeSet[Dependency]()}
}

func (tr *Tracker) track(d Dependency) {
	if tr == nil {
		return
	}
	if tr.seen.Add(d) {
		tr.deps = append(tr.deps, d)
	}
}

// Deps returns the dependencies recorded so far, in first-read order.
func (tr *Tracker) Deps() []Dependency {
	return append([]Dependency(nil), tr.deps...)
}

// Unwrap reads c and records it as a dependency of the running evaluation.
// A nil Tracker reads without tracking.
func Unwrap[T any](tr *Tracker, c Cell[T]) T {
	tr.track(c)
	return c.Value()
}

// ComputedOption configures Computed.
type ComputedOption func(*computedOptions)

type computedOptions struct {
	prune bool
}

// WithPruning drops, and unsubscribes from, dependencies that the latest
// evaluation did not read. Without it the dependency set only grows.
func WithPruning() ComputedOption {
	return func(o *computedOptions) {
		o.prune = true
	}
}

type computed[T any] struct {
	listenerSet[T]
	fn      func(*Tracker) T
	opts    computedOptions
	sources mapset.Set[Dependency]
	order   []Dependency
	subs    map[Dependency]Unsubscribe
}

// Computed derives a cell from fn, subscribing automatically to every cell fn
// reads through Unwrap.
//
//	total := cell.Computed(func(tr *cell.Tracker) int {
//		return cell.Unwrap(tr, price) * cell.Unwrap(tr, qty)
//	})
func Computed[T any](fn func(*Tracker) T, opts ...ComputedOption) Cell[T] {
	c := &computed[T]{
		fn:      fn,
		sources: mapset.NewThreadUnsafeSet[Dependency](),
		subs:    map[Dependency]Unsubscribe{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c.opts)
		}
	}
	c.listenerSet = listenerSet[T]{kind: "computed", start: c.activate, stop: c.deactivate}
	return c
}

func (c *computed[T]) Value() T {
	return c.evaluate()
}

func (c *computed[T]) evaluate() T {
	tr := newTracker()
	v := c.fn(tr)
	c.adopt(tr)
	return v
}

func (c *computed[T]) adopt(tr *Tracker) {
	for _, d := range tr.deps {
		if c.sources.Add(d) {
			c.order = append(c.order, d)
			if c.active() {
				c.subscribe(d)
			}
		}
	}
	if !c.opts.prune {
		return
	}

	kept := c.order[:0]
	for _, d := range c.order {
		if tr.seen.Contains(d) {
			kept = append(kept, d)
			continue
		}
		c.sources.Remove(d)
		if unsub, ok := c.subs[d]; ok {
			delete(c.subs, d)
			unsub()
		}
	}
	c.order = kept
}

func (c *computed[T]) subscribe(d Dependency) {
	if _, ok := c.subs[d]; ok {
		return
	}
	c.subs[d] = d.OnChange(c.recompute)
}

func (c *computed[T]) recompute() {
	c.notify(c.evaluate())
}

func (c *computed[T]) activate() {
	for _, d := range c.order {
		c.subscribe(d)
	}
	// Discover dependencies that no evaluation has seen yet.
	c.evaluate()
}

func (c *computed[T]) deactivate() {
	subs := c.subs
	c.subs = map[Dependency]Unsubscribe{}
	for _, unsub := range subs {
		unsub()
	}
}

// SourceCount reports how many dependencies a Computed cell currently tracks.
// It returns -1 for cells of other kinds.
func SourceCount[T any](c Cell[T]) int {
	if cc, ok := c.(*computed[T]); ok {
		return cc.sources.Cardinality()
	}
	return -1
}
