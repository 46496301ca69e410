package cell

// Var is the mutable root cell. It has no sources, so activation is a no-op.
type Var[T any] struct {
	listenerSet[T]
	v T
}

// New returns a Var holding v.
func New[T any](v T) *Var[T] {
	return &Var[T]{listenerSet: listenerSet[T]{kind: "var"}, v: v}
}

func (c *Var[T]) Value() T {
	return c.v
}

// Set replaces the value and notifies, even when v equals the old value.
func (c *Var[T]) Set(v T) {
	c.v = v
	c.notify(c.v)
}

func (c *Var[T]) Update(fn func(v *T)) {
	fn(&c.v)
	c.notify(c.v)
}

// Mutate runs fn against the stored value without notifying. The caller owes
// a Notify before handing control back to anyone that reads the cell.
func (c *Var[T]) Mutate(fn func(v *T)) {
	fn(&c.v)
}

// Notify delivers the current value to the observers.
func (c *Var[T]) Notify() {
	c.notify(c.v)
}

// UpdateDefined is Update for optional values: when the stored pointer is nil
// nothing runs and nothing is notified.
func UpdateDefined[T any](m Mutable[*T], fn func(v *T)) {
	if m.Value() == nil {
		return
	}
	m.Update(func(p **T) {
		fn(*p)
	})
}
