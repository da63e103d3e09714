package mutation

import "errors"

// ErrUnknownItem is returned when a watchlist addition names an item the
// catalog has never provided. It is the only hard failure in the mutation
// set; every other operation degrades to a no-op on missing entities.
var ErrUnknownItem = errors.New("unknown item")
