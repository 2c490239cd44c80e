package dot

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/samplerlab/modcheck/internal/model"
)

const (
	graphHeader = "digraph modulations {\n" +
		"  rankdir=LR;\n" +
		"  node [shape=box, fontname=\"Helvetica\"];\n"
	graphFooter = "}\n"
)

// ModulationGraph embeds the given edge lines, one per row, inside the
// graph template. Lines are NFC-normalized and sorted lexicographically
// (bytewise) first, so any permutation of the same multiset of lines
// produces identical output. An empty slice yields a template with an
// empty body.
func ModulationGraph(lines []string) string {
	sorted := make([]string, len(lines))
	for i, line := range lines {
		sorted[i] = norm.NFC.String(line)
	}
	slices.Sort(sorted)
	return render(sorted)
}

// DefaultGraph embeds the given edge lines, unsorted, after one
// structural block per region: the amplitude-envelope wiring every
// region carries by default. Callers build expected baselines by hand
// and control the ordering directly, so no sorting is applied.
func DefaultGraph(lines []string, numRegions int) string {
	body := make([]string, 0, numRegions+len(lines))
	for r := 0; r < numRegions; r++ {
		body = append(body, DefaultRegionEdge(r))
	}
	body = append(body, lines...)
	return render(body)
}

// DefaultRegionEdge returns the structural edge present for every
// region in a default graph.
func DefaultRegionEdge(region int) string {
	return fmt.Sprintf("%q -> %q",
		model.ModKey{Target: model.TargetAmplitudeEG, Region: region}.String(),
		model.ModKey{Target: model.TargetAmplitude, Region: region}.String())
}

// ConnectionEdge renders one modulation connection as a graph edge
// line, suitable as input to ModulationGraph.
func ConnectionEdge(conn model.Connection) string {
	source := fmt.Sprintf("cc_%d {curve=%d, smooth=%g, step=%g}",
		conn.CC, conn.Params.Curve, conn.Params.Smooth, conn.Params.Step)
	return fmt.Sprintf("%q -> %q [depth=%g]", source, conn.Target.String(), conn.Params.Depth)
}

// RegionEdges renders every connection of the region, in declaration
// order.
func RegionEdges(region *model.Region) []string {
	lines := make([]string, 0, len(region.Connections))
	for _, conn := range region.Connections {
		lines = append(lines, ConnectionEdge(conn))
	}
	return lines
}

func render(lines []string) string {
	var b strings.Builder
	b.WriteString(graphHeader)
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(graphFooter)
	return b.String()
}
