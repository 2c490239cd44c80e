// Package check is the verification core of modcheck.
//
// It provides three capabilities used to validate a sampler engine's
// modulation routing:
//
//   - RegionCCView: a read-only, target-filtered, CC-indexed view over
//     a region's modulation connections.
//   - ApproxEqual: tolerance-based elementwise comparison of numeric
//     sequences with a diagnostic report on mismatch.
//   - Voice-state projections: thin filters over the engine's voice
//     collection (active vs playing voices and their notes, velocities
//     and sample names).
//
// Everything here is single-threaded and synchronous. Callers must
// quiesce engine processing for the duration of any read; the package
// performs no locking and detects no concurrent mutation.
package check
