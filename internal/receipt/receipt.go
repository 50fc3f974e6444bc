// Package receipt persists completed sales. A receipt is an immutable
// snapshot of the cart and its computed totals at payment time; the stored
// numbers are authoritative and are never recomputed from the stored lines.
package receipt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rahathosen/cafe-pos/internal/cart"
	"github.com/rahathosen/cafe-pos/internal/pricing"
	"github.com/rahathosen/cafe-pos/internal/storage"
)

// ErrNotFound is returned by Get when no receipt has the requested ID.
var ErrNotFound = errors.New("receipt not found")

// Discount records the applied discount: the mode, the numeric value the
// cashier entered, and the resulting amount taken off the subtotal.
type Discount struct {
	Mode   string          `json:"type"`
	Value  decimal.Decimal `json:"value"`
	Amount decimal.Decimal `json:"amount"`
}

// Receipt is one completed sale. Field names match the persisted layout.
type Receipt struct {
	ID       string          `json:"id"`
	Items    []cart.Line     `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount Discount        `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
	Date     string          `json:"date"`
}

// Repository appends receipts to the durable list and reads them back.
// Writes are read-modify-write over the whole blob; a single writer is
// assumed.
type Repository struct {
	store storage.Store

	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

// NewRepository creates a repository over the given blob store.
func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store, now: time.Now}
}

// nextID returns a millisecond-timestamp ID, bumped past the previous one
// when two sales land in the same millisecond. Good enough for a single
// terminal; cross-process uniqueness is out of scope.
func (r *Repository) nextID(now time.Time) string {
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return strconv.FormatInt(id, 10)
}

// RecordSale builds the immutable receipt for the given cart snapshot and
// totals, appends it to the persisted list, and returns it.
func (r *Repository) RecordSale(ctx context.Context, lines []cart.Line, totals pricing.Totals, spec pricing.DiscountSpec) (Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	rec := Receipt{
		ID:       r.nextID(now),
		Items:    lines,
		Subtotal: totals.Subtotal,
		Discount: Discount{
			Mode:   spec.Mode,
			Value:  spec.Amount(),
			Amount: totals.DiscountAmount,
		},
		Tax:   totals.Tax,
		Total: totals.Total,
		Date:  now.Format(time.RFC3339),
	}

	receipts, err := r.load(ctx)
	if err != nil {
		return Receipt{}, err
	}
	receipts = append(receipts, rec)

	raw, err := json.Marshal(receipts)
	if err != nil {
		return Receipt{}, fmt.Errorf("marshal receipts: %w", err)
	}
	if err := r.store.Save(ctx, storage.KeyReceipts, raw); err != nil {
		return Receipt{}, fmt.Errorf("save receipts: %w", err)
	}
	return rec, nil
}

// List returns all receipts in insertion order, oldest first.
func (r *Repository) List(ctx context.Context) ([]Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

// Get returns the receipt with the given ID, or ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	receipts, err := r.load(ctx)
	if err != nil {
		return Receipt{}, err
	}
	for _, rec := range receipts {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Receipt{}, ErrNotFound
}

// load reads the persisted list. A missing or corrupt blob loads as an
// empty list.
func (r *Repository) load(ctx context.Context) ([]Receipt, error) {
	raw, err := r.store.Load(ctx, storage.KeyReceipts)
	if err != nil {
		return nil, fmt.Errorf("load receipts: %w", err)
	}
	if len(raw) == 0 {
		return []Receipt{}, nil
	}
	var receipts []Receipt
	if err := json.Unmarshal(raw, &receipts); err != nil {
		return []Receipt{}, nil
	}
	return receipts, nil
}
