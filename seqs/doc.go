/*
Package seqs splits sequences into contiguous spans.

A span is a maximal run of adjacent items whose keys are pairwise connected:

	vec := []int{1, 2, 5, 6, 7, 11, 13, 14, 15}
	spans := seqs.SpansByKey(seqs.SliceSource(vec),
		func(x int) int { return x },
		func(a, b int) bool { return a+1 == b })

	for span, ok := spans.Next(); ok; span, ok = spans.Next() {
		fmt.Println(span.Collect()) // [1 2], [5 6 7], [11], [13 14 15]
	}

# Laziness

Nothing is materialised. The source is pulled one item at a time and at most
one item is buffered ahead of what has been yielded. The key function runs
exactly once per item, so it may be expensive or have side effects.

# Spans share a cursor

A [Span] reads from the cursor owned by its [SpansBy]. Only the most recent
span is live: asking for the next span invalidates the previous one, which from
then on yields nothing. A span that is abandoned half way is fine; the next span
starts at the first item it did not consume. A span abandoned before its first
pull consumed nothing, so the next span starts on that same item again. Looping
over spans without ever pulling from them does not terminate.

# Iterators

[Spans], [SpansFunc] and [ChunkBy] expose the same segmentation over Go 1.23+
push iterators (iter.Seq) as a sequence of sequences. [CollectSpans] drains
them into slices when the caller wants owned storage.
*/
package seqs
