package check

import (
	"cmp"
	"slices"
)

// SortAll sorts each of the given sequences in place by its natural
// order. The sequences are independently owned; sorting one has no
// effect on the others. Sequences of different element types are sorted
// with separate calls.
//
// Projections over a synth's voice collection enumerate voices in
// allocation order, which is not meaningful to assertions; sorting
// first makes comparisons order-independent.
func SortAll[T cmp.Ordered](seqs ...[]T) {
	for _, s := range seqs {
		slices.Sort(s)
	}
}
