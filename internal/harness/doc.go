// Package harness executes verification scenarios.
//
// A scenario (see package fixture) declares regions under test and an
// ordered list of checks. The harness builds the regions, runs each
// check through the verification core (package check / package dot),
// and produces a Result: overall pass/fail plus an ordered event trace
// stamped with logical sequence numbers.
//
// Traces are deterministic by construction - sequence numbers come from
// a resettable logical clock and graph text from the sorting builders -
// so the same scenario produces byte-identical snapshots. Golden
// comparison (RunWithGolden) and the capture store (Record) both build
// on that property.
package harness
