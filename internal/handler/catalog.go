package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rahathosen/cafe-pos/internal/catalog"
)

// CatalogHandler serves the built-in POS menu: category tabs and the
// searchable item grid.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// RegisterRoutes registers the read-only catalog endpoints.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.Categories)
	r.Get("/menu", h.Menu)
}

// Categories returns the static category list.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories())
}

// Menu returns the menu items, filtered by the optional ?q= search query
// (case-insensitive substring match on the item name).
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	items := catalog.Filter(catalog.Items(), r.URL.Query().Get("q"))
	if items == nil {
		items = []catalog.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode JSON response: %v", err)
	}
}
