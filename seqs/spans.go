package seqs

import "iter"

// SpansBy splits a Source into contiguous spans and hands them out one at a time.
//
// Only the span returned by the most recent call to Next is live. Requesting
// a new span invalidates the previous one, whether or not it was drained, and
// segmentation resumes from wherever the previous span left the cursor.
type SpansBy[T, C any] struct {
	cur       *Peekable[T]
	key       func(T) C
	connected func(prev, next C) bool

	// headKey caches the key of the item buffered in cur so every item is
	// keyed exactly once.
	headKey C
	keyed   bool

	// gen identifies the live span.
	gen uint64
}

// SpansByKey splits src into contiguous spans.
//
// Items are not compared directly. key maps every item to a comparison key,
// and connected reports whether an item whose key is next belongs to the same
// span as the preceding item whose key is prev. key is called exactly once per
// item, at the moment the item is first looked at.
//
// Any Source gains the span capability through this function, including a
// Span itself.
func SpansByKey[T, C any](src Source[T], key func(T) C, connected func(prev, next C) bool) *SpansBy[T, C] {
	if key == nil || connected == nil {
		panic("seqs.SpansByKey: key and connected cannot be nil")
	}
	return &SpansBy[T, C]{
		cur:       NewPeekable(src),
		key:       key,
		connected: connected,
	}
}

// peek returns the head item and its key without consuming it.
func (s *SpansBy[T, C]) peek() (T, C, bool) {
	v, ok := s.cur.Peek()
	if !ok {
		var zero C
		return v, zero, false
	}
	if !s.keyed {
		s.headKey = s.key(v)
		s.keyed = true
	}
	return v, s.headKey, true
}

// advance consumes the head item.
func (s *SpansBy[T, C]) advance() (T, bool) {
	var zero C
	s.headKey, s.keyed = zero, false
	return s.cur.Next()
}

// Next returns the next span, or false once the source is exhausted.
// A returned span always yields at least one item.
func (s *SpansBy[T, C]) Next() (*Span[T, C], bool) {
	_, k, ok := s.peek()
	if !ok {
		return nil, false
	}
	s.gen++
	return &Span[T, C]{
		parent:  s,
		gen:     s.gen,
		prevKey: k,
	}, true
}

// All returns an iterator over the remaining spans. Each span is only valid
// until the loop advances to the next one. A span must yield at least one
// item before the loop advances; otherwise the next span is seeded with the
// same head item and the loop never ends.
func (s *SpansBy[T, C]) All() iter.Seq[*Span[T, C]] {
	return func(yield func(*Span[T, C]) bool) {
		for {
			span, ok := s.Next()
			if !ok || !yield(span) {
				return
			}
		}
	}
}

type spanState uint8

const (
	spanFresh spanState = iota
	spanActive
	spanExhausted
)

// Span is a single-use lazy sequence over one contiguous group of items.
// It shares its parent's cursor and must be consumed before the parent
// hands out the next span.
type Span[T, C any] struct {
	parent  *SpansBy[T, C]
	gen     uint64
	prevKey C
	state   spanState
}

// Next returns the next item of the span. Once it returns false it keeps
// returning false.
func (sp *Span[T, C]) Next() (v T, ok bool) {
	if sp.state == spanExhausted {
		return v, false
	}
	if sp.gen != sp.parent.gen {
		// A newer span owns the cursor.
		sp.state = spanExhausted
		return v, false
	}

	if sp.state == spanFresh {
		// The seed item was keyed when the span was created.
		sp.state = spanActive
		return sp.parent.advance()
	}

	_, k, ok := sp.parent.peek()
	if !ok {
		sp.state = spanExhausted
		return v, false
	}
	if !sp.parent.connected(sp.prevKey, k) {
		// The peeked item stays in the cursor and seeds the next span.
		sp.state = spanExhausted
		return v, false
	}
	sp.prevKey = k
	return sp.parent.advance()
}

// Key returns the key of the most recently yielded item, or the seed key if
// nothing was pulled yet. The key of the item that ended the span is not
// recorded here; it seeds the next span instead.
func (sp *Span[T, C]) Key() C {
	return sp.prevKey
}

// All returns an iterator over the remaining items of the span.
func (sp *Span[T, C]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := sp.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains the span into a new slice.
func (sp *Span[T, C]) Collect() []T {
	var out []T
	for v := range sp.All() {
		out = append(out, v)
	}
	return out
}
