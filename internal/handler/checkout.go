package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahathosen/cafe-pos/internal/cart"
	"github.com/rahathosen/cafe-pos/internal/enum"
	"github.com/rahathosen/cafe-pos/internal/pricing"
	"github.com/rahathosen/cafe-pos/internal/receipt"
	"github.com/rahathosen/cafe-pos/internal/ws"
)

// ReceiptStore defines the repository methods needed by checkout handlers.
// Satisfied by *receipt.Repository; narrow interface for testability.
type ReceiptStore interface {
	RecordSale(ctx context.Context, lines []cart.Line, totals pricing.Totals, spec pricing.DiscountSpec) (receipt.Receipt, error)
	List(ctx context.Context) ([]receipt.Receipt, error)
	Get(ctx context.Context, id string) (receipt.Receipt, error)
}

// Broadcaster pushes sale events to connected displays. Satisfied by *ws.Hub.
type Broadcaster interface {
	Broadcast(event ws.Event)
}

// CheckoutHandler handles payment and the sales history endpoints.
type CheckoutHandler struct {
	cart     *cart.Cart
	calc     pricing.Calculator
	receipts ReceiptStore
	feed     Broadcaster
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(c *cart.Cart, calc pricing.Calculator, receipts ReceiptStore, feed Broadcaster) *CheckoutHandler {
	return &CheckoutHandler{cart: c, calc: calc, receipts: receipts, feed: feed}
}

// RegisterRoutes registers checkout and receipt endpoints.
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/checkout", h.Pay)
	r.Get("/receipts", h.List)
	r.Get("/receipts/{id}", h.Get)
}

// --- Request types ---

type checkoutRequest struct {
	DiscountMode  string `json:"discount_mode"`
	DiscountValue string `json:"discount_value"`
}

// --- Handlers ---

// Pay snapshots the cart and its totals into an immutable receipt, appends
// it to the sales history, announces it on the feed, and clears the cart.
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	spec := pricing.DiscountSpec{}
	if req.DiscountMode != "" {
		if !enum.ValidDiscountMode(req.DiscountMode) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid discount_mode"})
			return
		}
		if !pricing.ValidInput(req.DiscountValue) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid discount_value"})
			return
		}
		spec = pricing.DiscountSpec{Mode: req.DiscountMode, Value: req.DiscountValue}
	}

	lines := h.cart.Lines()
	if len(lines) == 0 {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "cart is empty"})
		return
	}

	totals := h.calc.Totals(lines, spec)
	rec, err := h.receipts.RecordSale(r.Context(), lines, totals, spec)
	if err != nil {
		log.Printf("ERROR: record sale: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.cart.Clear()
	h.announce(rec)

	writeJSON(w, http.StatusCreated, rec)
}

// List returns all receipts, oldest first.
func (h *CheckoutHandler) List(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.receipts.List(r.Context())
	if err != nil {
		log.Printf("ERROR: list receipts: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, receipts)
}

// Get returns a single receipt by ID.
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.receipts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, receipt.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "receipt not found"})
			return
		}
		log.Printf("ERROR: get receipt: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// announce pushes the recorded sale to connected sales displays.
func (h *CheckoutHandler) announce(rec receipt.Receipt) {
	if h.feed == nil {
		return
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		log.Printf("ERROR: marshal sale event: %v", err)
		return
	}
	h.feed.Broadcast(ws.Event{Type: "sale.recorded", Payload: payload})
}
