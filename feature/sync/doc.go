// Package sync implements the catalog sync engine.
//
// It pulls each catalog kind from the remote provider and merges it into
// the local store. The merge rule is the single most important correctness
// property of the tracker: incoming catalog fields always win, existing
// user-state fields are always preserved. Violating it silently deletes
// user progress.
//
// # Failure isolation
//
// SyncAll runs the per-kind syncs concurrently. A failure in one kind never
// blocks or fails the others; every failure is logged and swallowed, and
// the kind is simply retried on the next cycle. Stale-but-present data
// keeps serving in the meantime.
//
// # Concurrency
//
// Two simultaneous syncs of the same kind race on the same
// read-merge-write pattern as a concurrent user mutation on the same
// record: there is no lock or version check, last write wins. This is the
// source system's de facto policy and is preserved deliberately.
package sync
