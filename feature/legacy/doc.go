// Package legacy implements the one-time migration of the previous storage
// generation and the human-editable profile export/import.
//
// The legacy blob is a single JSON file of shape {version, userState} at a
// well-known path. Migration consumes it exactly once: it first runs a full
// catalog sync (user state cannot be applied to records that do not exist
// yet), then replays every field through the mutation operations, skipping
// unknown ids with a warning. The blob is deleted only after a fully
// successful run; a parse failure leaves it intact so the user can retry.
//
// The in-memory once guard does not survive a restart. A restart
// mid-migration therefore re-runs it from scratch, which is harmless
// because every applied operation is an absolute set, and keeping the blob
// until full success is the stronger safety property.
//
// Export/import round-trips the same {version, userState} shape through
// TOML instead of raw JSON so the profile stays hand-editable.
package legacy
