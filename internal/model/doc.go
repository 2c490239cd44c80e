// Package model holds the synth-side data model consumed by the
// verification toolkit: modulation targets, connections, regions and
// voices.
//
// The toolkit never mutates these values. Regions are owned by the
// engine (or a test fixture) and are only borrowed for the duration of
// a read; see check.RegionCCView for the lifetime contract.
package model
