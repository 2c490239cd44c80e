package check

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultEpsilon is the absolute margin used by ApproxEqual when the
// caller does not supply one.
const DefaultEpsilon = 1e-3

// DiagWriter receives the diagnostic report emitted on mismatch. It
// defaults to stderr; tests redirect it to capture the report. Writes
// are synchronous and unbuffered relative to the caller.
var DiagWriter io.Writer = os.Stderr

// Real is the set of element types the sequence comparators accept.
type Real interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// ApproxEqual compares two sequences elementwise with DefaultEpsilon as
// the absolute margin. See ApproxEqualEps.
func ApproxEqual[T Real](lhs, rhs []T) bool {
	eps := float64(DefaultEpsilon)
	return ApproxEqualEps(lhs, rhs, T(eps))
}

// ApproxEqualEps compares two sequences element by element. A pair
// differs when |lhs[i] - rhs[i]| > eps (absolute margin, not relative).
//
// If the lengths differ the result is false immediately and no element
// is compared. Otherwise the scan runs left to right and stops at the
// first differing pair.
//
// On any mismatch a diagnostic report is written to DiagWriter: the
// offending index and delta for an element mismatch, or the two lengths
// for a length mismatch, followed by a preview of both sequences.
func ApproxEqualEps[T Real](lhs, rhs []T, eps T) bool {
	if len(lhs) != len(rhs) {
		fmt.Fprintf(DiagWriter, "length mismatch: lhs has %d elements, rhs has %d\n", len(lhs), len(rhs))
		printPreviews(lhs, rhs)
		return false
	}

	for i := range rhs {
		delta := lhs[i] - rhs[i]
		if delta < 0 {
			delta = -delta
		}
		if delta > eps {
			fmt.Fprintf(DiagWriter, "%v != %v (delta %v) at index %d\n", lhs[i], rhs[i], delta, i)
			printPreviews(lhs, rhs)
			return false
		}
	}
	return true
}

func printPreviews[T Real](lhs, rhs []T) {
	fmt.Fprintln(DiagWriter, "Differences between sequences")
	fmt.Fprintf(DiagWriter, "lhs: %s\n", preview(lhs))
	fmt.Fprintf(DiagWriter, "rhs: %s\n", preview(rhs))
}

// preview renders a sequence for the diagnostic report. Sequences with
// fewer than 16 elements print in full; longer ones print the first 8
// elements, an ellipsis, then the last 8. An empty sequence prints as
// "{ }".
func preview[T Real](seq []T) string {
	if len(seq) == 0 {
		return "{ }"
	}

	var b strings.Builder
	b.WriteString("{ ")
	if len(seq) < 16 {
		for i, v := range seq {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", v)
		}
	} else {
		for i := 0; i < 8; i++ {
			fmt.Fprintf(&b, "%v, ", seq[i])
		}
		b.WriteString("...")
		for i := len(seq) - 8; i < len(seq); i++ {
			fmt.Fprintf(&b, ", %v", seq[i])
		}
	}
	b.WriteString(" }")
	return b.String()
}
