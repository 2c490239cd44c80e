package harness

import "fmt"

// CheckEvent is one executed check in a run's trace.
type CheckEvent struct {
	// Seq is the logical sequence number; ordering key for traces and
	// the capture store.
	Seq int64
	// Kind is the check type (cc_view, sequence, graph).
	Kind string
	// Name labels the check within the scenario.
	Name string
	// Pass is the check outcome.
	Pass bool
	// Detail carries the failure diagnostic; empty on pass.
	Detail string
}

// Result is the outcome of running a scenario.
type Result struct {
	// Scenario is the scenario name.
	Scenario string
	// Pass is true iff every check passed.
	Pass bool
	// Events contains one entry per executed check, in order.
	Events []CheckEvent
	// Graphs holds the rendered modulation graph per region name, for
	// every graph check that ran.
	Graphs map[string]string
}

// NewResult creates an empty passing result for the named scenario.
func NewResult(scenario string) *Result {
	return &Result{
		Scenario: scenario,
		Pass:     true,
		Events:   []CheckEvent{},
		Graphs:   map[string]string{},
	}
}

// addEvent appends an event and folds its outcome into the overall
// result.
func (r *Result) addEvent(ev CheckEvent) {
	r.Events = append(r.Events, ev)
	if !ev.Pass {
		r.Pass = false
	}
}

// Failures returns the detail lines of the failed checks.
func (r *Result) Failures() []string {
	var out []string
	for _, ev := range r.Events {
		if !ev.Pass {
			out = append(out, fmt.Sprintf("%s: %s", ev.Name, ev.Detail))
		}
	}
	return out
}
