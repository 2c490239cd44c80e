package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/samplerlab/modcheck/internal/check"
	"github.com/samplerlab/modcheck/internal/dot"
	"github.com/samplerlab/modcheck/internal/fixture"
	"github.com/samplerlab/modcheck/internal/model"
	"github.com/samplerlab/modcheck/internal/store"
	"github.com/samplerlab/modcheck/internal/testutil"
)

// RunIDGenerator names capture-store runs. Production code uses
// UUIDRunID; golden tests substitute testutil.FixedRunID.
type RunIDGenerator interface {
	NewID() string
}

// UUIDRunID generates UUIDv7 run identifiers.
type UUIDRunID struct{}

// NewID implements RunIDGenerator.
func (UUIDRunID) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Harness executes scenarios. It is single-threaded: Run temporarily
// redirects the comparator's diagnostic writer, so concurrent Run
// calls on any harness are not supported.
type Harness struct {
	clock  *testutil.SeqClock
	runIDs RunIDGenerator
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the harness logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) { h.logger = logger }
}

// WithRunIDGenerator overrides the run-identifier generator.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(h *Harness) { h.runIDs = g }
}

// New creates a harness with a fresh logical clock.
func New(opts ...Option) *Harness {
	h := &Harness{
		clock:  testutil.NewSeqClock(),
		runIDs: UUIDRunID{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes every check of the scenario in order and returns the
// result. The clock is reset first, so the same scenario always yields
// the same sequence numbers.
func (h *Harness) Run(scenario *fixture.Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("nil scenario")
	}

	h.clock.Reset()
	regions := scenario.BuildRegions()
	result := NewResult(scenario.Name)

	h.logger.Debug("running scenario", "scenario", scenario.Name, "checks", len(scenario.Checks))

	for i, spec := range scenario.Checks {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("%s[%d]", spec.Type, i)
		}

		var pass bool
		var detail string
		switch spec.Type {
		case fixture.CheckCCView:
			pass, detail = h.runCCView(regions, spec)
		case fixture.CheckSequence:
			pass, detail = h.runSequence(spec)
		case fixture.CheckGraph:
			pass, detail = h.runGraph(regions, spec, result)
		default:
			// Load-time validation rejects unknown types; a result
			// event keeps the trace honest if one slips through.
			pass, detail = false, fmt.Sprintf("unknown check type %q", spec.Type)
		}

		result.addEvent(CheckEvent{
			Seq:    h.clock.Next(),
			Kind:   spec.Type,
			Name:   name,
			Pass:   pass,
			Detail: detail,
		})
	}

	h.logger.Debug("scenario finished", "scenario", scenario.Name, "pass", result.Pass)
	return result, nil
}

// Run executes the scenario with a default harness.
func Run(scenario *fixture.Scenario) (*Result, error) {
	return New().Run(scenario)
}

func (h *Harness) runCCView(regions []model.Region, spec fixture.CheckSpec) (bool, string) {
	target, err := model.ParseModTarget(spec.Target)
	if err != nil {
		return false, err.Error()
	}
	key := model.ModKey{Target: target, Region: spec.Region, Index: spec.Index}
	view := check.NewRegionCCView(&regions[spec.Region], key)

	var problems []string
	if spec.Size != nil && view.Size() != *spec.Size {
		problems = append(problems, fmt.Sprintf("size = %d, want %d", view.Size(), *spec.Size))
	}
	for _, want := range spec.Depths {
		depth, err := view.ValueAt(want.CC)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		if math.Abs(float64(depth)-float64(want.Depth)) > check.DefaultEpsilon {
			problems = append(problems, fmt.Sprintf("depth at CC %d = %g, want %g", want.CC, depth, want.Depth))
		}
	}
	for _, cc := range spec.Missing {
		if _, err := view.At(cc); !errors.Is(err, check.ErrNotFound) {
			problems = append(problems, fmt.Sprintf("CC %d: connection present, want none", cc))
		}
	}
	return len(problems) == 0, strings.Join(problems, "; ")
}

func (h *Harness) runSequence(spec fixture.CheckSpec) (bool, string) {
	eps := float64(check.DefaultEpsilon)
	if spec.Epsilon != nil {
		eps = *spec.Epsilon
	}

	// Capture the comparator's diagnostic report as the event detail.
	var diag bytes.Buffer
	prev := check.DiagWriter
	check.DiagWriter = &diag
	equal := check.ApproxEqualEps(spec.LHS, spec.RHS, eps)
	check.DiagWriter = prev

	want := true
	if spec.Equal != nil {
		want = *spec.Equal
	}
	if equal == want {
		return true, ""
	}
	if !equal {
		return false, strings.TrimSpace(diag.String())
	}
	return false, "sequences compare equal, expected a mismatch"
}

func (h *Harness) runGraph(regions []model.Region, spec fixture.CheckSpec, result *Result) (bool, string) {
	region := &regions[spec.Region]
	rendered := dot.ModulationGraph(dot.RegionEdges(region))
	result.Graphs[region.Name] = rendered

	expected := dot.ModulationGraph(spec.Lines)
	if rendered == expected {
		return true, ""
	}
	return false, fmt.Sprintf("graph mismatch for %s:\n--- expected ---\n%s--- actual ---\n%s", region.Name, expected, rendered)
}

// Record writes the result to the capture store. The run identifier is
// the scenario's fixed run_id when set, otherwise a fresh one from the
// harness generator. Returns the run ID.
func (h *Harness) Record(ctx context.Context, st *store.Store, scenario *fixture.Scenario, result *Result) (string, error) {
	runID := scenario.RunID
	if runID == "" {
		runID = h.runIDs.NewID()
	}

	if err := st.WriteRun(ctx, store.Run{ID: runID, Scenario: result.Scenario, Pass: result.Pass}); err != nil {
		return "", err
	}
	for _, ev := range result.Events {
		err := st.WriteEvent(ctx, store.Event{
			RunID:  runID,
			Seq:    ev.Seq,
			Kind:   ev.Kind,
			Name:   ev.Name,
			Pass:   ev.Pass,
			Detail: ev.Detail,
		})
		if err != nil {
			return "", err
		}
	}
	for name, dotText := range result.Graphs {
		if err := st.WriteGraph(ctx, store.Graph{RunID: runID, Name: name, DOT: dotText}); err != nil {
			return "", err
		}
	}

	h.logger.Info("recorded run", "run_id", runID, "scenario", result.Scenario, "pass", result.Pass)
	return runID, nil
}
