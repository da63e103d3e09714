// Package mutation implements the sanctioned write path to user-state
// fields: station level, owned quantities, focus flags, watchlist entries,
// task completion and map pins.
//
// Every operation is a narrow transform of exactly one record, applied
// through the store's partial-update contract so catalog columns are never
// touched. Operations on unknown entities degrade to no-ops, with one
// exception: AddToWatchlist returns ErrUnknownItem, the single hard error
// in the set.
//
// Set-style operations are idempotent to replay; toggle-style operations
// (focus, completion) are stateful flips.
//
// # Known race
//
// Read-modify-write operations (focus toggle, watchlist add, purchase
// decrements, pin upserts) are not atomic against a concurrent catalog
// sync of the same record: whichever write lands last wins. This mirrors
// the source system; no locking is layered on top.
package mutation
