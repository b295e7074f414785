package seqs

import "iter"

// Spans splits seq into contiguous spans, see SpansByKey.
//
// Each inner sequence is only valid until the outer loop advances. An inner
// sequence that is left undrained is abandoned, and the next span starts at
// the first item it did not consume. If nothing at all was pulled from it,
// the next span starts on the same item again, so a loop that never pulls
// from its spans (e.g. one that always continues) never terminates.
func Spans[T, C any](seq iter.Seq[T], key func(T) C, connected func(prev, next C) bool) iter.Seq[iter.Seq[T]] {
	return func(yield func(iter.Seq[T]) bool) {
		src, stop := PullSource(seq)
		defer stop()

		for span := range SpansByKey(src, key, connected).All() {
			if !yield(span.All()) {
				return
			}
		}
	}
}

func SpansFunc[T any](seq iter.Seq[T], connected func(prev, next T) bool) iter.Seq[iter.Seq[T]] {
	return Spans(seq, func(v T) T { return v }, connected)
}

// ChunkBy groups consecutive elements of seq that share the same key.
// Unlike a map based grouping, equal keys that are not adjacent end up in separate chunks.
func ChunkBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[iter.Seq[T]] {
	return Spans(seq, key, func(prev, next K) bool { return prev == next })
}

func CollectSpans[T any](spans iter.Seq[iter.Seq[T]]) [][]T {
	var out [][]T
	for span := range spans {
		var items []T
		for v := range span {
			items = append(items, v)
		}
		out = append(out, items)
	}
	return out
}
