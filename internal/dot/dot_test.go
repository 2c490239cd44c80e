package dot

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samplerlab/modcheck/internal/model"
)

func modRegion() *model.Region {
	amp := model.ModKey{Target: model.TargetAmplitude, Region: 0}
	pan := model.ModKey{Target: model.TargetPan, Region: 0}
	return &model.Region{
		Name: "r0",
		Connections: []model.Connection{
			{CC: 1, Target: amp, Params: model.ModParams{Depth: 0.5}},
			{CC: 7, Target: amp, Params: model.ModParams{Curve: 2, Smooth: 10, Depth: 0.2}},
			{CC: 1, Target: pan, Params: model.ModParams{Depth: 0.9}},
		},
	}
}

func TestModulationGraph_PermutationInvariant(t *testing.T) {
	lines := RegionEdges(modRegion())
	want := ModulationGraph(lines)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), lines...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, ModulationGraph(shuffled))
	}

	assert.Equal(t,
		ModulationGraph([]string{"b->c", "a->b"}),
		ModulationGraph([]string{"a->b", "b->c"}))
}

func TestModulationGraph_SortsBody(t *testing.T) {
	out := ModulationGraph([]string{"b->c", "a->b"})

	ia := strings.Index(out, "a->b")
	ib := strings.Index(out, "b->c")
	require.Greater(t, ia, 0)
	require.Greater(t, ib, 0)
	assert.Less(t, ia, ib)
}

func TestModulationGraph_NormalizesToNFC(t *testing.T) {
	// "é" composed vs decomposed; both must render identically.
	composed := "é->x"
	decomposed := "é->x"
	assert.Equal(t, ModulationGraph([]string{composed}), ModulationGraph([]string{decomposed}))
}

func TestModulationGraph_EmptyBody(t *testing.T) {
	out := ModulationGraph(nil)

	assert.True(t, strings.HasPrefix(out, "digraph modulations {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	// Preamble rows only, no edge rows.
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestDefaultGraph_RegionBlockCount(t *testing.T) {
	lines := []string{`"x" -> "y"`}

	one := DefaultGraph(lines, 1)
	three := DefaultGraph(lines, 3)

	assert.Equal(t, 1, strings.Count(one, "amplitude_eg"))
	assert.Equal(t, 3, strings.Count(three, "amplitude_eg"))

	// The body is identical and unsorted for the same lines.
	assert.Contains(t, one, `  "x" -> "y"`+"\n")
	assert.Contains(t, three, `  "x" -> "y"`+"\n")
}

func TestDefaultGraph_KeepsCallerOrder(t *testing.T) {
	out := DefaultGraph([]string{"b->c", "a->b"}, 1)

	ia := strings.Index(out, "a->b")
	ib := strings.Index(out, "b->c")
	assert.Less(t, ib, ia)
}

func TestConnectionEdge(t *testing.T) {
	conn := model.Connection{
		CC:     7,
		Target: model.ModKey{Target: model.TargetAmplitude, Region: 0},
		Params: model.ModParams{Curve: 2, Smooth: 10, Depth: 0.2},
	}

	line := ConnectionEdge(conn)
	assert.Equal(t, `"cc_7 {curve=2, smooth=10, step=0}" -> "amplitude {region=0}" [depth=0.2]`, line)
}

func TestModulationGraph_Golden(t *testing.T) {
	out := ModulationGraph(RegionEdges(modRegion()))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "modulation_graph", []byte(out))
}

func TestDefaultGraph_Golden(t *testing.T) {
	extra := []string{`"cc_7 {curve=0, smooth=0, step=0}" -> "amplitude {region=0}" [depth=0.2]`}
	out := DefaultGraph(extra, 2)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default_graph", []byte(out))
}
