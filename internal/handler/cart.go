package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahathosen/cafe-pos/internal/cart"
	"github.com/rahathosen/cafe-pos/internal/catalog"
	"github.com/rahathosen/cafe-pos/internal/enum"
	"github.com/rahathosen/cafe-pos/internal/pricing"
)

// CartHandler exposes the cashier's cart: add, update, remove, clear, and
// the current lines with live totals.
type CartHandler struct {
	cart *cart.Cart
	calc pricing.Calculator
}

// NewCartHandler creates a new CartHandler over the shared session cart.
func NewCartHandler(c *cart.Cart, calc pricing.Calculator) *CartHandler {
	return &CartHandler{cart: c, calc: calc}
}

// RegisterRoutes registers cart endpoints on the given Chi router.
// Expected to be mounted at /cart
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
	r.Delete("/", h.Clear)
	r.Post("/items", h.AddItem)
	r.Put("/items/{id}", h.UpdateItem)
	r.Delete("/items/{id}", h.RemoveItem)
}

// --- Request / Response types ---

type addItemRequest struct {
	ItemID    string `json:"item_id"`
	VariantID string `json:"variant_id"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items  []cart.Line    `json:"items"`
	Totals pricing.Totals `json:"totals"`
}

// discountFromQuery reads the optional discount_mode / discount_value query
// parameters. The value text goes through the same gate as the discount
// input field, so the calculator only ever sees valid-or-empty numerics.
func discountFromQuery(r *http.Request) (pricing.DiscountSpec, string) {
	mode := r.URL.Query().Get("discount_mode")
	value := r.URL.Query().Get("discount_value")

	if mode == "" {
		if value != "" {
			return pricing.DiscountSpec{}, "discount_mode is required when discount_value is set"
		}
		return pricing.DiscountSpec{}, ""
	}
	if !enum.ValidDiscountMode(mode) {
		return pricing.DiscountSpec{}, "invalid discount_mode"
	}
	if !pricing.ValidInput(value) {
		return pricing.DiscountSpec{}, "invalid discount_value"
	}
	return pricing.DiscountSpec{Mode: mode, Value: value}, ""
}

// --- Handlers ---

// Get returns the current cart lines and their computed totals. Totals are
// recomputed on every call; nothing is cached.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	spec, problem := discountFromQuery(r)
	if problem != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": problem})
		return
	}

	lines := h.cart.Lines()
	writeJSON(w, http.StatusOK, cartResponse{
		Items:  lines,
		Totals: h.calc.Totals(lines, spec),
	})
}

// AddItem puts one unit of a menu item (with an optional variant) in the
// cart, merging into an existing line when the identity matches.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, ok := catalog.FindItem(catalog.Items(), req.ItemID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	var variant *catalog.Variant
	if req.VariantID != "" {
		v, ok := item.Variant(req.VariantID)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "variant not found"})
			return
		}
		variant = &v
	}

	h.cart.Add(item, variant)

	lines := h.cart.Lines()
	writeJSON(w, http.StatusOK, cartResponse{
		Items:  lines,
		Totals: h.calc.Totals(lines, pricing.DiscountSpec{}),
	})
}

// UpdateItem sets a line's quantity. Zero or below removes the line, same
// as RemoveItem. Unknown line IDs are a no-op.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	h.cart.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)

	lines := h.cart.Lines()
	writeJSON(w, http.StatusOK, cartResponse{
		Items:  lines,
		Totals: h.calc.Totals(lines, pricing.DiscountSpec{}),
	})
}

// RemoveItem deletes a line; idempotent when the line is already gone.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.cart.Remove(chi.URLParam(r, "id"))

	lines := h.cart.Lines()
	writeJSON(w, http.StatusOK, cartResponse{
		Items:  lines,
		Totals: h.calc.Totals(lines, pricing.DiscountSpec{}),
	})
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}
