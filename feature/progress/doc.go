// Package progress implements the derivation engine.
//
// Every computation here is a pure function over a (catalog snapshot, user
// state) pair: deterministic, side-effect free, and tolerant of absent data
// (missing catalog or empty user state short-circuits to empty results,
// never an error). That purity is what makes the engine independently
// testable.
//
// The Service assembles the UserState snapshot by scanning the store. The
// snapshot is rebuilt on demand, never mutated in place, and never itself
// the source of truth.
//
// # Derivations
//
//   - requirement evaluation: which station/trader requirements of an
//     upgrade are unmet, and whether the upgrade is available
//   - upgrade partitioning: unpurchased, available, focused and
//     non-focused-unpurchased sets
//   - item summary: required-now / will-need / total / owned / remaining
//     per item, most urgently blocking items first
//   - raid simulation: the before/after effect of a proposed batch of item
//     and task deltas, without committing anything
package progress
