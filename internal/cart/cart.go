// Package cart implements the order cart: an ordered collection of priced
// lines keyed by item+variant identity.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rahathosen/cafe-pos/internal/catalog"
)

// Line is one priced, quantified row in the current order. UnitPrice is
// frozen when the line is created; later catalog edits do not touch it.
type Line struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Variant   string          `json:"variant,omitempty"`
}

// LineID derives the cart line identity: the item ID alone, or
// itemID-variantID when a variant is selected.
func LineID(itemID, variantID string) string {
	if variantID == "" {
		return itemID
	}
	return itemID + "-" + variantID
}

// Cart is the single cashier session's order state. All operations are
// total: they cannot fail, and unknown IDs are ignored. A mutex guards the
// lines so the HTTP layer can share one instance.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the item (with the optional variant) in the cart.
// A line with the same item+variant identity is merged by incrementing its
// quantity; the unit price is not recomputed.
func (c *Cart) Add(item catalog.MenuItem, variant *catalog.Variant) {
	id := item.ID
	name := item.Name
	unitPrice := item.BasePrice
	variantLabel := ""
	if variant != nil {
		id = LineID(item.ID, variant.ID)
		unitPrice = item.BasePrice.Add(variant.PriceDelta)
		variantLabel = variant.Name
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{
		ID:        id,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
		Variant:   variantLabel,
	})
}

// UpdateQuantity replaces the line's quantity. A quantity of zero or below
// removes the line, identically to Remove. Unknown IDs are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line if present; no-op otherwise.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

// Lines returns an ordered snapshot copy of the current lines.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
