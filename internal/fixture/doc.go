// Package fixture loads verification scenarios from YAML files.
//
// A scenario declares the regions under test (their modulation
// connections) and the checks to run against them. Files are decoded
// strictly (unknown fields are rejected) and then validated against an
// embedded CUE schema before the harness ever sees them, so schema
// errors surface with positions instead of as confusing check
// failures.
package fixture
