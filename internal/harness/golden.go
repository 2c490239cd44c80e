package harness

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/samplerlab/modcheck/internal/fixture"
)

// Snapshot renders a result as deterministic text for golden
// comparison. Events appear in trace order; graphs are keyed by region
// name and emitted in sorted order.
func Snapshot(result *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", result.Scenario)
	fmt.Fprintf(&b, "pass: %t\n", result.Pass)

	for _, ev := range result.Events {
		outcome := "pass"
		if !ev.Pass {
			outcome = "FAIL"
		}
		fmt.Fprintf(&b, "[%d] %s %s %s\n", ev.Seq, ev.Kind, ev.Name, outcome)
		if ev.Detail != "" {
			for _, line := range strings.Split(ev.Detail, "\n") {
				fmt.Fprintf(&b, "    %s\n", line)
			}
		}
	}

	names := make([]string, 0, len(result.Graphs))
	for name := range result.Graphs {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(&b, "graph %s:\n%s", name, result.Graphs[name])
	}

	return b.String()
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/<scenario name>.golden. Regenerate baselines with:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario itself cannot run; a snapshot
// mismatch fails the test through goldie.
func RunWithGolden(t *testing.T, h *Harness, scenario *fixture.Scenario) error {
	t.Helper()

	result, err := h.Run(scenario)
	if err != nil {
		return err
	}

	AssertGolden(t, scenario.Name, result)
	return nil
}

// AssertGolden compares an already-computed result against the golden
// baseline named after the scenario.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(Snapshot(result)))
}
