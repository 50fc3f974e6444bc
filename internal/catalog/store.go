package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rahathosen/cafe-pos/internal/storage"
)

// LoadStored reads the editable menu collection from the blob store. A
// missing or corrupt blob loads as an empty collection; availability wins
// over strict validation.
func LoadStored(ctx context.Context, store storage.Store) ([]MenuItem, error) {
	raw, err := store.Load(ctx, storage.KeyMenuItems)
	if err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	if len(raw) == 0 {
		return []MenuItem{}, nil
	}
	var items []MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return []MenuItem{}, nil
	}
	return items, nil
}

// SaveStored writes the full editable menu collection back to the blob store.
func SaveStored(ctx context.Context, store storage.Store, items []MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal menu items: %w", err)
	}
	if err := store.Save(ctx, storage.KeyMenuItems, raw); err != nil {
		return fmt.Errorf("save menu items: %w", err)
	}
	return nil
}
