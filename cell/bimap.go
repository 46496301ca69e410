package cell

type lens[T any] struct {
	*derived[T]
	write func(v T)
	edit  func(fn func(*T))
}

func (l *lens[T]) Set(v T) {
	l.write(v)
}

func (l *lens[T]) Update(fn func(v *T)) {
	l.edit(fn)
}

// Bimap derives a two-way cell: reads go through encode, writes go through
// decode back onto src.
func Bimap[S, T any](src Mutable[S], encode func(S) T, decode func(T) S) Mutable[T] {
	l := &lens[T]{
		derived: Map(src, encode).(*derived[T]),
	}
	l.write = func(v T) {
		src.Set(decode(v))
	}
	l.edit = func(fn func(*T)) {
		v := encode(src.Value())
		fn(&v)
		src.Set(decode(v))
	}
	return l
}

// Lens projects one field of a struct cell as a writable cell. Writes update
// the source in place, so sibling fields are untouched.
func Lens[S, F any](src Mutable[S], get func(S) F, set func(s *S, v F)) Mutable[F] {
	l := &lens[F]{
		derived: Map(src, get).(*derived[F]),
	}
	l.write = func(v F) {
		src.Update(func(s *S) {
			set(s, v)
		})
	}
	l.edit = func(fn func(*F)) {
		src.Update(func(s *S) {
			f := get(*s)
			fn(&f)
			set(s, f)
		})
	}
	return l
}

// Props is a lazily built table of field cells over a struct cell. Each field
// is declared once, by name, with explicit accessors.
type Props[S any] struct {
	src    Mutable[S]
	fields map[string]any
}

func NewProps[S any](src Mutable[S]) *Props[S] {
	return &Props[S]{src: src, fields: map[string]any{}}
}

// Field returns the cell for the named field, building it on first use.
// Later calls with the same name return the same cell and ignore the
// accessors. Field panics if name was first declared with another type.
func Field[S, F any](p *Props[S], name string, get func(S) F, set func(s *S, v F)) Mutable[F] {
	if f, ok := p.fields[name]; ok {
		return f.(Mutable[F])
	}
	f := Lens(p.src, get, set)
	p.fields[name] = f
	return f
}

// Len reports how many fields have been built so far.
func (p *Props[S]) Len() int {
	return len(p.fields)
}
