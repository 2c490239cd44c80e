package model

// Connection maps a controller channel onto a modulation target,
// carrying the shaping parameters applied along the way.
type Connection struct {
	// CC is the continuous-controller number acting as the source.
	CC int
	// Target is the modulation destination.
	Target ModKey
	// Params shape the source signal (curve, smoothing, step, depth).
	Params ModParams
}

// Region is a configuration unit describing playback and modulation
// rules for a range of notes and velocities. It owns its connections in
// declaration order; the order is not sorted by CC and duplicates
// (same CC, same target) are allowed.
type Region struct {
	// Name labels the region in diagnostics and graphs.
	Name string
	// Sample is the sample file the region plays.
	Sample string
	// KeyLo and KeyHi bound the triggering note range, inclusive.
	KeyLo, KeyHi int
	// VelLo and VelHi bound the triggering velocity range, inclusive.
	VelLo, VelHi float32

	// Connections in declaration order.
	Connections []Connection
}

// Copy returns a deep copy of the region.
func (r *Region) Copy() Region {
	conns := make([]Connection, len(r.Connections))
	copy(conns, r.Connections)
	out := *r
	out.Connections = conns
	return out
}
