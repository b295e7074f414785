package seqs_test

import (
	"slices"
	"testing"

	"spans/seqs"
)

func BenchmarkSpans(b *testing.B) {
	size := 1_000_000
	input := make([]int, size)
	for i := range input {
		// runs of 8 consecutive integers
		input[i] = i + i/8
	}

	b.Run("SpansByKey", func(b *testing.B) {
		for b.Loop() {
			s := seqs.SpansByKey(seqs.SliceSource(input), identity, succ)
			for span, ok := s.Next(); ok; span, ok = s.Next() {
				for range span.All() {
				}
			}
		}
	})

	b.Run("Spans_Iter", func(b *testing.B) {
		for b.Loop() {
			for span := range seqs.SpansFunc(slices.Values(input), succ) {
				for range span {
				}
			}
		}
	})
}
