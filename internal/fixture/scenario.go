package fixture

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samplerlab/modcheck/internal/model"
)

// Scenario is a verification scenario: the regions under test plus the
// checks to run against them.
type Scenario struct {
	// Name uniquely identifies the scenario; it keys golden baselines
	// and capture-store runs.
	Name string `yaml:"name"`

	// Description explains what the scenario verifies.
	Description string `yaml:"description,omitempty"`

	// Regions under test, in declaration order.
	Regions []RegionSpec `yaml:"regions"`

	// Checks to execute, in order.
	Checks []CheckSpec `yaml:"checks"`

	// RunID optionally fixes the capture-store run identifier for
	// deterministic golden comparison. Empty means a fresh UUIDv7 per
	// run.
	RunID string `yaml:"run_id,omitempty"`
}

// RegionSpec declares one region's modulation connections.
type RegionSpec struct {
	Name        string     `yaml:"name,omitempty"`
	Sample      string     `yaml:"sample,omitempty"`
	Connections []ConnSpec `yaml:"connections"`
}

// ConnSpec declares one modulation connection.
type ConnSpec struct {
	CC     int    `yaml:"cc"`
	Target string `yaml:"target"`
	// Region is the target's region index; defaults to the region the
	// connection is declared under.
	Region *int    `yaml:"region,omitempty"`
	Index  int     `yaml:"index,omitempty"`
	Curve  int     `yaml:"curve,omitempty"`
	Smooth float32 `yaml:"smooth,omitempty"`
	Step   float32 `yaml:"step,omitempty"`
	Depth  float32 `yaml:"depth"`
}

// Check type constants.
const (
	CheckCCView   = "cc_view"
	CheckSequence = "sequence"
	CheckGraph    = "graph"
)

// CheckSpec declares one check.
type CheckSpec struct {
	// Type is one of cc_view, sequence, graph.
	Type string `yaml:"type"`

	// Name labels the check in traces and the capture store. Defaults
	// to "<type>[<position>]".
	Name string `yaml:"name,omitempty"`

	// cc_view: the view's target, the region index it addresses, and
	// the expectations to verify against it.
	Target string        `yaml:"target,omitempty"`
	Region int           `yaml:"region,omitempty"`
	Index  int           `yaml:"index,omitempty"`
	Size   *int          `yaml:"size,omitempty"`
	Depths []DepthExpect `yaml:"depths,omitempty"`
	// Missing lists CC numbers that must report NotFound.
	Missing []int `yaml:"missing,omitempty"`

	// sequence: the two sequences, the absolute margin (defaults to
	// check.DefaultEpsilon) and whether they are expected to compare
	// equal (defaults to true).
	LHS     []float64 `yaml:"lhs,omitempty"`
	RHS     []float64 `yaml:"rhs,omitempty"`
	Epsilon *float64  `yaml:"epsilon,omitempty"`
	Equal   *bool     `yaml:"equal,omitempty"`

	// graph: the expected edge lines for the region's modulation
	// graph. Order-insensitive; both sides go through the sorting
	// builder before comparison.
	Lines []string `yaml:"lines,omitempty"`
}

// DepthExpect pins the depth looked up for one CC number.
type DepthExpect struct {
	CC    int     `yaml:"cc"`
	Depth float32 `yaml:"depth"`
}

// Load reads, schema-validates and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes scenario bytes. The path is only used in error
// positions.
func Parse(path string, data []byte) (*Scenario, error) {
	if err := validateSchema(path, data); err != nil {
		return nil, err
	}

	// Strict decoding catches typos the schema's open structs let
	// through.
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// validate applies the cross-field rules the schema cannot express.
func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Checks) == 0 {
		return fmt.Errorf("scenario %q has no checks", s.Name)
	}
	for i, c := range s.Checks {
		switch c.Type {
		case CheckCCView:
			if c.Region < 0 || c.Region >= len(s.Regions) {
				return fmt.Errorf("check[%d]: region %d out of range (have %d regions)", i, c.Region, len(s.Regions))
			}
			if _, err := model.ParseModTarget(c.Target); err != nil {
				return fmt.Errorf("check[%d]: %w", i, err)
			}
		case CheckSequence:
			if c.Epsilon != nil && *c.Epsilon < 0 {
				return fmt.Errorf("check[%d]: epsilon must be >= 0", i)
			}
		case CheckGraph:
			if c.Region < 0 || c.Region >= len(s.Regions) {
				return fmt.Errorf("check[%d]: region %d out of range (have %d regions)", i, c.Region, len(s.Regions))
			}
		default:
			return fmt.Errorf("check[%d]: unknown check type %q", i, c.Type)
		}
	}
	for i, r := range s.Regions {
		for j, conn := range r.Connections {
			if _, err := model.ParseModTarget(conn.Target); err != nil {
				return fmt.Errorf("region[%d].connections[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

// BuildRegions converts the region specs into model regions. Target
// labels were validated at load time.
func (s *Scenario) BuildRegions() []model.Region {
	regions := make([]model.Region, len(s.Regions))
	for i, spec := range s.Regions {
		region := model.Region{Name: spec.Name, Sample: spec.Sample}
		if region.Name == "" {
			region.Name = fmt.Sprintf("region_%d", i)
		}
		for _, c := range spec.Connections {
			target, err := model.ParseModTarget(c.Target)
			if err != nil {
				// Unreachable after validate; keep regions consistent
				// anyway.
				continue
			}
			targetRegion := i
			if c.Region != nil {
				targetRegion = *c.Region
			}
			region.Connections = append(region.Connections, model.Connection{
				CC: c.CC,
				Target: model.ModKey{
					Target: target,
					Region: targetRegion,
					Index:  c.Index,
				},
				Params: model.ModParams{
					Curve:  c.Curve,
					Smooth: c.Smooth,
					Step:   c.Step,
					Depth:  c.Depth,
				},
			})
		}
		regions[i] = region
	}
	return regions
}
