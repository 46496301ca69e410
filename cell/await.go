package cell

// Promise is a single-assignment value settled on the same goroutine that
// reads it. Until then its result cell holds nil.
type Promise[T any] struct {
	result  *Var[*T]
	err     error
	settled bool
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{result: New[*T](nil)}
}

// Resolved returns an already settled Promise.
func Resolved[T any](v T) *Promise[T] {
	p := NewPromise[T]()
	p.Resolve(v)
	return p
}

// Resolve settles p with v. Only the first Resolve or Reject has any effect.
func (p *Promise[T]) Resolve(v T) {
	if p.settled {
		return
	}
	p.settled = true
	p.result.Set(&v)
}

// Reject settles p with err; its result stays nil.
func (p *Promise[T]) Reject(err error) {
	if p.settled {
		return
	}
	p.settled = true
	p.err = err
}

func (p *Promise[T]) Settled() bool {
	return p.settled
}

func (p *Promise[T]) Err() error {
	return p.err
}

// Result is the cell that turns non-nil once p resolves.
func (p *Promise[T]) Result() Cell[*T] {
	return p.result
}

// Await follows the promise currently held by c. The value is nil while that
// promise is pending, rejected, or when c holds no promise. Results of
// promises c has since moved away from are ignored.
func Await[T any](c Cell[*Promise[T]]) Cell[*T] {
	none := Const[*T](nil)
	return FlatMap(c, func(p *Promise[T]) Cell[*T] {
		if p == nil {
			return none
		}
		return p.result
	})
}
