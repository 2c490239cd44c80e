package check

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDiag redirects the diagnostic writer for the duration of the
// test and returns the buffer it writes into.
func captureDiag(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := DiagWriter
	DiagWriter = &buf
	t.Cleanup(func() { DiagWriter = prev })
	return &buf
}

func TestApproxEqual_Reflexive(t *testing.T) {
	buf := captureDiag(t)

	x := []float64{1.0, -2.5, 3.25, 0}
	assert.True(t, ApproxEqualEps(x, x, 0))
	assert.True(t, ApproxEqual(x, x))
	assert.Empty(t, buf.String())
}

func TestApproxEqual_WithinMargin(t *testing.T) {
	buf := captureDiag(t)

	lhs := []float64{1.0, 2.0, 3.0}
	rhs := []float64{1.0005, 2.0, 3.0}
	assert.True(t, ApproxEqualEps(lhs, rhs, 1e-3))
	assert.Empty(t, buf.String())
}

func TestApproxEqual_LengthMismatch(t *testing.T) {
	buf := captureDiag(t)

	lhs := []float64{1.0, 2.0}
	rhs := []float64{1.0, 2.0, 3.0}
	assert.False(t, ApproxEqual(lhs, rhs))

	out := buf.String()
	assert.Contains(t, out, "length mismatch")
	assert.Contains(t, out, "lhs has 2 elements, rhs has 3")
	// Length mismatch skips the element scan entirely.
	assert.NotContains(t, out, "at index")
}

func TestApproxEqual_ElementMismatch(t *testing.T) {
	buf := captureDiag(t)

	lhs := []float64{1.0, 2.0, 3.0}
	rhs := []float64{1.0, 2.5, 3.0}
	assert.False(t, ApproxEqualEps(lhs, rhs, 1e-3))

	out := buf.String()
	assert.Contains(t, out, "at index 1")
	assert.Contains(t, out, "delta 0.5")
	assert.Contains(t, out, "lhs: { 1, 2, 3 }")
	assert.Contains(t, out, "rhs: { 1, 2.5, 3 }")
}

func TestApproxEqual_ShortCircuitsAtFirstMismatch(t *testing.T) {
	buf := captureDiag(t)

	lhs := []float64{0, 1.0, 2.0}
	rhs := []float64{0, 9.0, 7.0}
	assert.False(t, ApproxEqual(lhs, rhs))

	out := buf.String()
	assert.Contains(t, out, "at index 1")
	assert.NotContains(t, out, "at index 2")
}

func TestApproxEqual_Symmetric(t *testing.T) {
	captureDiag(t)

	lhs := []float32{1.0, 2.0, 3.0}
	rhs := []float32{1.0, 2.5, 3.0}
	assert.Equal(t, ApproxEqual(lhs, rhs), ApproxEqual(rhs, lhs))

	same := []float32{4, 5, 6}
	other := []float32{4, 5, 6.0004}
	assert.Equal(t, ApproxEqualEps(same, other, 1e-3), ApproxEqualEps(other, same, 1e-3))
}

func TestApproxEqual_EmptySequences(t *testing.T) {
	buf := captureDiag(t)

	assert.True(t, ApproxEqual([]float64{}, []float64{}))
	assert.Empty(t, buf.String())
}

func TestApproxEqual_EmptyPreviewMarker(t *testing.T) {
	buf := captureDiag(t)

	assert.False(t, ApproxEqual([]float64{}, []float64{1.0}))
	assert.Contains(t, buf.String(), "lhs: { }")
}

func TestApproxEqual_LongPreviewElides(t *testing.T) {
	buf := captureDiag(t)

	lhs := make([]int, 20)
	rhs := make([]int, 20)
	for i := range lhs {
		lhs[i] = i
		rhs[i] = i
	}
	rhs[19] = 100

	assert.False(t, ApproxEqual(lhs, rhs))

	out := buf.String()
	assert.Contains(t, out, "at index 19")
	assert.Contains(t, out, "lhs: { 0, 1, 2, 3, 4, 5, 6, 7, ..., 12, 13, 14, 15, 16, 17, 18, 19 }")
	assert.Contains(t, out, "rhs: { 0, 1, 2, 3, 4, 5, 6, 7, ..., 12, 13, 14, 15, 16, 17, 18, 100 }")
}

func TestApproxEqual_FullPreviewBelowSixteen(t *testing.T) {
	buf := captureDiag(t)

	lhs := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	rhs := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 99}
	assert.False(t, ApproxEqual(lhs, rhs))

	out := buf.String()
	assert.NotContains(t, out, "...")
	assert.Contains(t, out, "{ 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15 }")
}

func TestApproxEqual_IntegerElements(t *testing.T) {
	captureDiag(t)

	// The default margin truncates to zero in the integer domain, so
	// integer comparison is exact.
	assert.True(t, ApproxEqual([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.False(t, ApproxEqual([]int{1, 2, 3}, []int{1, 2, 4}))
	assert.True(t, ApproxEqualEps([]int64{10, 20}, []int64{11, 19}, 1))
}

func TestApproxEqual_ExactWithZeroEpsilon(t *testing.T) {
	buf := captureDiag(t)

	lhs := []float64{1.0, 2.0}
	rhs := []float64{1.0, 2.0000001}
	require.False(t, ApproxEqualEps(lhs, rhs, 0))
	assert.Contains(t, buf.String(), "at index 1")
}
