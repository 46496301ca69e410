package cell

// Emitter is a raw event source. It holds no value; observers only see
// events emitted after they subscribe.
type Emitter[E any] struct {
	listenerSet[E]
}

// NewEmitter returns an Emitter. The optional start and stop hooks run when
// the first observer arrives and when the last one leaves.
func NewEmitter[E any](start, stop func()) *Emitter[E] {
	return &Emitter[E]{
		listenerSet: listenerSet[E]{kind: "emitter", start: start, stop: stop},
	}
}

// Emit delivers e to every current observer.
func (em *Emitter[E]) Emit(e E) {
	em.notify(e)
}
