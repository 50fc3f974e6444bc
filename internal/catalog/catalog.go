// Package catalog holds the menu reference data: categories, sellable items
// and their priced variants. The cart engine treats all of it as read-only.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups menu items into POS menu tabs.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Variant is a priced modifier of a menu item, e.g. a size. PriceDelta is
// added to the parent item's base price; zero or positive.
type Variant struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	PriceDelta decimal.Decimal `json:"price"`
}

// MenuItem is a sellable catalog entry.
type MenuItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BasePrice  decimal.Decimal `json:"price"`
	CategoryID string          `json:"categoryId"`
	Image      string          `json:"image"`
	Variants   []Variant       `json:"variants,omitempty"`
}

// Variant returns the item's variant with the given ID.
func (m MenuItem) Variant(id string) (Variant, bool) {
	for _, v := range m.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Filter returns the items whose name contains query, case-insensitively.
// An empty query returns the input unfiltered, preserving order.
func Filter(items []MenuItem, query string) []MenuItem {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	var matched []MenuItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			matched = append(matched, item)
		}
	}
	return matched
}

// FindItem returns the item with the given ID from items.
func FindItem(items []MenuItem, id string) (MenuItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
