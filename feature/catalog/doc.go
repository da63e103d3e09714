// Package catalog defines the shared catalog entity types and the remote
// provider that serves them.
//
// The catalog is the read-only, remotely sourced reference data: stations
// (with their level tiers and requirements), traders (with loyalty tiers),
// items, tasks and maps. User progress is never part of the catalog; it is
// colocated onto catalog records by the store package and written only by
// the mutation package.
//
// # Provider
//
// The Provider interface exposes one batch read per entity kind. The
// concrete client fetches each kind with a single GraphQL query against the
// configured endpoint. A transport failure, a non-success status or an
// error envelope in the response aborts only that kind's fetch; the sync
// engine treats such failures as transient and retries on the next cycle.
package catalog
