package cell

// Dependency is the type-erased view of a cell used for dependency tracking.
type Dependency interface {
	OnChange(fn func()) Unsubscribe
	ObserverCount() int
}

// Cell is a pull-consistent, push-notified value. Value is always correct
// without a subscription, and equals whatever the latest notification carried.
type Cell[T any] interface {
	Observable[T]
	Dependency
	Value() T
}

// Mutable is a Cell that can be written.
type Mutable[T any] interface {
	Cell[T]
	Set(v T)
	// Update hands fn exclusive access to the stored value for the duration
	// of the call, then notifies. fn must not retain the pointer.
	Update(fn func(v *T))
}

// GetAndObserve calls fn with the current value and then subscribes it, so no
// change can slip in between the read and the subscription.
func GetAndObserve[T any](c Cell[T], fn func(T)) Unsubscribe {
	fn(c.Value())
	return c.ObserveFunc(fn)
}

type derived[T any] struct {
	listenerSet[T]
	value  func() T
	stopFn func()
}

func (d *derived[T]) Value() T {
	return d.value()
}

// NewDerived builds a custom read-only cell. value computes the current value
// on demand. start is called on activation with an emit func that notifies the
// observers; it returns the func that releases whatever start acquired.
func NewDerived[T any](value func() T, start func(emit func(T)) (stop func())) Cell[T] {
	return newDerived("derived", value, start)
}

func newDerived[T any](kind string, value func() T, start func(emit func(T)) func()) *derived[T] {
	d := &derived[T]{value: value}
	d.listenerSet = listenerSet[T]{
		kind: kind,
		start: func() {
			d.stopFn = start(d.notify)
		},
		stop: func() {
			if d.stopFn != nil {
				stop := d.stopFn
				d.stopFn = nil
				stop()
			}
		},
	}
	return d
}

type constant[T any] struct {
	listenerSet[T]
	v T
}

func (c *constant[T]) Value() T {
	return c.v
}

// Const returns a cell that never changes.
func Const[T any](v T) Cell[T] {
	return &constant[T]{listenerSet: listenerSet[T]{kind: "const"}, v: v}
}
