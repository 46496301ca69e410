package cell

import (
	"log/slog"
	"slices"
)

// Unsubscribe detaches an observer. Calling it more than once is a no-op.
type Unsubscribe func()

// Listener receives values pushed by an Observable.
// Implementations must be comparable; pointer receivers are the norm.
type Listener[T any] interface {
	Changed(value T)
}

type funcListener[T any] struct {
	fn func(T)
}

func (l *funcListener[T]) Changed(value T) {
	l.fn(value)
}

// Func wraps fn in a Listener with its own identity.
func Func[T any](fn func(T)) Listener[T] {
	return &funcListener[T]{fn: fn}
}

// Observable is a discrete source of values.
type Observable[T any] interface {
	Observe(l Listener[T]) Unsubscribe
	ObserveFunc(fn func(T)) Unsubscribe
	Unobserve(l Listener[T])
	ObserverCount() int
}

type entry[T any] struct {
	l    Listener[T]
	live bool
}

// listenerSet is embedded by every cell kind and by Emitter. It owns the
// activation lifecycle: start runs on the 0->1 transition, stop on 1->0.
type listenerSet[T any] struct {
	kind    string
	entries []*entry[T]
	start   func()
	stop    func()

	// depth counts dispatches of this set that are still running.
	depth int
}

func (s *listenerSet[T]) Observe(l Listener[T]) Unsubscribe {
	if l == nil {
		return func() {}
	}
	for _, e := range s.entries {
		if e.l == l {
			return func() { s.drop(e) }
		}
	}

	e := &entry[T]{l: l, live: true}
	s.entries = append(s.entries, e)
	if len(s.entries) == 1 && s.start != nil {
		logger.Debug("activate", slog.String("kind", s.kind))
		s.start()
	}
	return func() { s.drop(e) }
}

func (s *listenerSet[T]) ObserveFunc(fn func(T)) Unsubscribe {
	return s.Observe(Func(fn))
}

// OnChange observes without the value. It satisfies Dependency.
func (s *listenerSet[T]) OnChange(fn func()) Unsubscribe {
	return s.Observe(Func(func(T) { fn() }))
}

func (s *listenerSet[T]) Unobserve(l Listener[T]) {
	for _, e := range s.entries {
		if e.l == l {
			s.drop(e)
			return
		}
	}
}

func (s *listenerSet[T]) ObserverCount() int {
	return len(s.entries)
}

func (s *listenerSet[T]) active() bool {
	return len(s.entries) > 0
}

func (s *listenerSet[T]) drop(e *entry[T]) {
	if !e.live {
		return
	}
	e.live = false
	i := slices.Index(s.entries, e)
	if i < 0 {
		return
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	if len(s.entries) == 0 && s.stop != nil {
		logger.Debug("deactivate", slog.String("kind", s.kind))
		s.stop()
	}
}

// notify delivers v to a snapshot of the current observers in registration
// order, skipping any that were removed while the dispatch was running.
func (s *listenerSet[T]) notify(v T) {
	if len(s.entries) == 0 {
		return
	}
	s.depth++
	if s.depth > MaxNotifyDepth {
		d := s.depth
		s.depth--
		panic(&DepthError{Depth: d})
	}
	defer func() { s.depth-- }()

	snapshot := slices.Clone(s.entries)
	for _, e := range snapshot {
		if e.live {
			e.l.Changed(v)
		}
	}
}
