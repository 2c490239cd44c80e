package testutil

// FixedRunID generates the same run identifier every time.
//
// The capture store keys check runs by ID; golden tests need the same
// scenario to produce byte-identical records, so they substitute this
// generator for the production UUIDv7 one.
type FixedRunID struct {
	id string
}

// NewFixedRunID creates a generator returning id. An empty id defaults
// to "test-run-default".
func NewFixedRunID(id string) *FixedRunID {
	if id == "" {
		id = "test-run-default"
	}
	return &FixedRunID{id: id}
}

// NewID implements harness.RunIDGenerator.
func (g *FixedRunID) NewID() string { return g.id }
