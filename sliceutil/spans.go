package sliceutil

import "iter"

// Spans yields the starting index and a subslice of s for every contiguous span.
// The subslices share memory with s.
//
// key is called exactly once per element; connected receives the keys of two
// adjacent elements. An empty subslice is never yielded.
func Spans[T, C any](s []T, key func(T) C, connected func(prev, next C) bool) iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if len(s) == 0 {
			return
		}
		start := 0
		prev := key(s[0])
		for i := 1; i < len(s); i++ {
			next := key(s[i])
			if !connected(prev, next) {
				if !yield(start, s[start:i:i]) {
					return
				}
				start = i
			}
			prev = next
		}
		yield(start, s[start:])
	}
}

// SplitByKey splits s into its contiguous spans, see Spans.
func SplitByKey[T, C any](s []T, key func(T) C, connected func(prev, next C) bool) [][]T {
	var res [][]T
	for _, span := range Spans(s, key, connected) {
		res = append(res, span)
	}
	return res
}
