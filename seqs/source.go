package seqs

import "iter"

// Source is an ordered, single-pass, pull-based sequence.
// Next returns false once the source is exhausted.
type Source[T any] interface {
	Next() (T, bool)
}

type SourceFunc[T any] func() (T, bool)

func (f SourceFunc[T]) Next() (T, bool) { return f() }

func SliceSource[T any](s []T) Source[T] {
	i := 0
	return SourceFunc[T](func() (v T, ok bool) {
		if i >= len(s) {
			return v, false
		}
		v = s[i]
		i++
		return v, true
	})
}

// PullSource converts a push iterator into a Source using iter.Pull.
// The returned stop function must be called once the source is no longer needed.
func PullSource[T any](seq iter.Seq[T]) (Source[T], func()) {
	next, stop := iter.Pull(seq)
	return SourceFunc[T](next), stop
}

// Peekable wraps a Source with a one-element look-ahead buffer.
type Peekable[T any] struct {
	src  Source[T]
	head T

	// buffered reports whether head holds an item not yet consumed.
	buffered bool

	// done is sticky: the underlying source is never pulled again after it ends.
	done bool
}

func NewPeekable[T any](src Source[T]) *Peekable[T] {
	return &Peekable[T]{src: src}
}

// Peek returns the next item without consuming it.
func (p *Peekable[T]) Peek() (T, bool) {
	if !p.buffered && !p.done {
		p.head, p.buffered = p.src.Next()
		p.done = !p.buffered
	}
	return p.head, p.buffered
}

// Next consumes and returns the next item.
func (p *Peekable[T]) Next() (T, bool) {
	v, ok := p.Peek()
	if ok {
		var zero T
		p.head, p.buffered = zero, false
	}
	return v, ok
}
