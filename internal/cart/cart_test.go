package cart

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rahathosen/cafe-pos/internal/catalog"
)

func testItem() catalog.MenuItem {
	return catalog.MenuItem{
		ID:        "A",
		Name:      "Cappuccino",
		BasePrice: decimal.RequireFromString("4.50"),
		Variants: []catalog.Variant{
			{ID: "S", Name: "Small", PriceDelta: decimal.Zero},
			{ID: "L", Name: "Large", PriceDelta: decimal.RequireFromString("1.00")},
		},
	}
}

func TestLineID(t *testing.T) {
	if got := LineID("101", ""); got != "101" {
		t.Errorf("no variant: got %q, want %q", got, "101")
	}
	if got := LineID("101", "v2"); got != "101-v2" {
		t.Errorf("with variant: got %q, want %q", got, "101-v2")
	}
}

func TestAdd_SameVariantMerges(t *testing.T) {
	c := New()
	item := testItem()
	small, _ := item.Variant("S")

	c.Add(item, &small)
	c.Add(item, &small)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].ID != "A-S" {
		t.Errorf("line ID: got %q, want %q", lines[0].ID, "A-S")
	}
	if lines[0].Quantity != 2 {
		t.Errorf("quantity: got %d, want 2", lines[0].Quantity)
	}
}

func TestAdd_DifferentVariantsAreSeparateLines(t *testing.T) {
	c := New()
	item := testItem()
	small, _ := item.Variant("S")
	large, _ := item.Variant("L")

	c.Add(item, &small)
	c.Add(item, &large)
	c.Add(item, nil)

	lines := c.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].ID != "A-S" || lines[1].ID != "A-L" || lines[2].ID != "A" {
		t.Errorf("line IDs: got %q, %q, %q", lines[0].ID, lines[1].ID, lines[2].ID)
	}
}

func TestAdd_UnitPriceIncludesVariantDelta(t *testing.T) {
	c := New()
	item := testItem()
	large, _ := item.Variant("L")

	c.Add(item, &large)

	lines := c.Lines()
	want := decimal.RequireFromString("5.50")
	if !lines[0].UnitPrice.Equal(want) {
		t.Errorf("unit price: got %s, want %s", lines[0].UnitPrice, want)
	}
	if lines[0].Variant != "Large" {
		t.Errorf("variant label: got %q, want %q", lines[0].Variant, "Large")
	}
}

func TestAdd_RepeatAddKeepsOriginalPrice(t *testing.T) {
	c := New()
	item := testItem()
	c.Add(item, nil)

	// catalog price changes after the line exists
	item.BasePrice = decimal.RequireFromString("9.99")
	c.Add(item, nil)

	lines := c.Lines()
	want := decimal.RequireFromString("4.50")
	if !lines[0].UnitPrice.Equal(want) {
		t.Errorf("unit price after repeat add: got %s, want %s", lines[0].UnitPrice, want)
	}
	if lines[0].Quantity != 2 {
		t.Errorf("quantity: got %d, want 2", lines[0].Quantity)
	}
}

func TestUpdateQuantity_Replaces(t *testing.T) {
	c := New()
	c.Add(testItem(), nil)

	c.UpdateQuantity("A", 5)

	if got := c.Lines()[0].Quantity; got != 5 {
		t.Errorf("quantity: got %d, want 5", got)
	}
}

func TestUpdateQuantity_ZeroMatchesRemove(t *testing.T) {
	viaUpdate := New()
	viaRemove := New()
	item := testItem()
	small, _ := item.Variant("S")
	for _, c := range []*Cart{viaUpdate, viaRemove} {
		c.Add(item, nil)
		c.Add(item, &small)
	}

	viaUpdate.UpdateQuantity("A", 0)
	viaRemove.Remove("A")

	if !reflect.DeepEqual(viaUpdate.Lines(), viaRemove.Lines()) {
		t.Errorf("states differ:\nupdate: %+v\nremove: %+v", viaUpdate.Lines(), viaRemove.Lines())
	}
}

func TestUpdateQuantity_UnknownIDIsNoop(t *testing.T) {
	c := New()
	c.Add(testItem(), nil)

	c.UpdateQuantity("missing", 3)

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Errorf("cart changed: %+v", lines)
	}
}

func TestRemove_Idempotent(t *testing.T) {
	c := New()
	c.Add(testItem(), nil)

	c.Remove("A")
	c.Remove("A")

	if got := len(c.Lines()); got != 0 {
		t.Errorf("expected empty cart, got %d lines", got)
	}
}

func TestClear_Idempotent(t *testing.T) {
	c := New()
	item := testItem()
	c.Add(item, nil)

	c.Clear()
	once := c.Lines()
	c.Clear()
	twice := c.Lines()

	if len(once) != 0 || len(twice) != 0 {
		t.Errorf("expected empty cart after clears, got %d then %d lines", len(once), len(twice))
	}
}

func TestLines_SnapshotIsACopy(t *testing.T) {
	c := New()
	c.Add(testItem(), nil)

	snapshot := c.Lines()
	snapshot[0].Quantity = 99

	if got := c.Lines()[0].Quantity; got != 1 {
		t.Errorf("snapshot mutation leaked into cart: quantity %d", got)
	}
}
