// Package repository provides typed accessors over the kv store, one per
// entity collection. Every mutation is load → transform → Replace: the whole
// collection travels on each write, which keeps invariants trivial but makes
// concurrent writers last-write-wins (a documented boundary, not a bug).
package repository

// Store keys. These are the wire contract shared with the presentation layer
// and any external tooling; do not rename.
const (
	keyUsers        = "users"
	keyWorkers      = "workers"
	keyOre          = "oreData"
	keyOrders       = "orders"
	keySuppliers    = "suppliers"
	keyManutenzioni = "manutenzioni"
	keyEvents       = "calEvents"
	keyPrefs        = "uiPrefs"
	keyCurrentUser  = "currentUser"

	presencePrefix = "pres-" // + month key, e.g. "pres-2024-03"
)
