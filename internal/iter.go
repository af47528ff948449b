package internal

import (
	"iter"
	"slices"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Permutations yields every ordering of items, using Heap's algorithm.
// Each yielded slice is a fresh copy that the consumer may keep.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		work := slices.Clone(items)
		if !yield(slices.Clone(work)) {
			return
		}

		count := make([]int, len(work))
		for n := 1; n < len(work); {
			if count[n] < n {
				if n%2 == 0 {
					work[0], work[n] = work[n], work[0]
				} else {
					work[count[n]], work[n] = work[n], work[count[n]]
				}
				if !yield(slices.Clone(work)) {
					return
				}
				count[n]++
				n = 1
			} else {
				count[n] = 0
				n++
			}
		}
	}
}
