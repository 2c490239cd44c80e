// Package dot renders modulation-routing topology as canonical
// Graphviz text.
//
// The output is used to assert routing against fixed baselines, so the
// builders are deterministic: ModulationGraph normalizes and sorts its
// input lines to erase the engine's (unspecified) connection
// enumeration order, while DefaultGraph keeps the caller's order
// because baselines are written by hand. The exact template is an
// internal contract owned by this repository's fixtures.
package dot
