// Package store implements the persistent local store.
//
// Each catalog entity kind gets one table, and user progress is colocated
// on the same record as the catalog fields it annotates (a station record
// carries the purchased level, an inventory record carries the owned
// quantity and watchlist target, and so on). That colocation makes the
// partial-update contract the single load-bearing rule of the store:
// updates name exactly the columns they change and leave every other
// column untouched, which is how a catalog sync can refresh catalog fields
// without ever clobbering user progress.
//
// # Contract
//
//   - point read by id, secondary lookup by name for inventory and tasks
//   - partial column update (unnamed columns untouched)
//   - insert-if-absent
//   - full-table scan
//
// Cross-table consistency is eventual; no transaction spans two tables.
// The schema is owned by AutoMigrate and pinned by a schema_meta row.
package store
