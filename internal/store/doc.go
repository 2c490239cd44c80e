// Package store provides SQLite-backed capture storage for check runs.
//
// A run records one harness execution of a scenario: its identifier,
// overall pass/fail, the ordered check events, and any rendered
// modulation graphs. Captured runs let a failing CI run be inspected
// after the fact and let graph baselines be regenerated from a known
// good run.
//
// Ordering uses the harness's logical sequence numbers, never
// timestamps, so a replayed scenario reads back identically.
//
// The verification core itself stays stateless; the store is
// surrounding harness infrastructure and entirely optional.
package store
