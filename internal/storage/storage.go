// Package storage provides the durable key-value blob store backing the
// editable menu and the receipt history. Values are opaque serialized
// collections; concurrent writers are not coordinated (last write wins),
// which matches the single-terminal deployment model.
package storage

import "context"

// Keys of the persisted collections.
const (
	KeyMenuItems = "menuItems"
	KeyReceipts  = "receipts"
)

// Store is a durable key-value blob store. Load returns a nil slice for a
// missing key; absence is not an error.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
