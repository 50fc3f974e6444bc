package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rahathosen/cafe-pos/internal/catalog"
	"github.com/rahathosen/cafe-pos/internal/storage"
)

// MenuItemHandler handles the dashboard's menu editing endpoints. It owns
// the persisted menuItems collection, which is independent of the built-in
// POS menu.
type MenuItemHandler struct {
	store storage.Store
}

// NewMenuItemHandler creates a new MenuItemHandler.
func NewMenuItemHandler(store storage.Store) *MenuItemHandler {
	return &MenuItemHandler{store: store}
}

// RegisterRoutes registers menu item CRUD endpoints on the given Chi router.
// Expected to be mounted at /menu-items
func (h *MenuItemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request types ---

type menuItemRequest struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	CategoryID string `json:"category_id"`
	Image      string `json:"image"`
}

// validate parses the request and reports the first problem as an error
// message suitable for the response body.
func (req menuItemRequest) validate() (decimal.Decimal, string) {
	if req.Name == "" {
		return decimal.Decimal{}, "name is required"
	}
	if req.Price == "" {
		return decimal.Decimal{}, "price is required"
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return decimal.Decimal{}, "invalid price"
	}
	if price.IsNegative() {
		return decimal.Decimal{}, "price must be >= 0"
	}
	if req.CategoryID == "" {
		return decimal.Decimal{}, "category_id is required"
	}
	if !knownCategory(req.CategoryID) {
		return decimal.Decimal{}, "invalid category_id"
	}
	return price, ""
}

func knownCategory(id string) bool {
	for _, c := range catalog.Categories() {
		if c.ID == id {
			return true
		}
	}
	return false
}

// --- Handlers ---

// List returns the full stored menu collection.
func (h *MenuItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := catalog.LoadStored(r.Context(), h.store)
	if err != nil {
		log.Printf("ERROR: list menu items: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get returns a single stored menu item by ID.
func (h *MenuItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	items, err := catalog.LoadStored(r.Context(), h.store)
	if err != nil {
		log.Printf("ERROR: get menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	item, ok := catalog.FindItem(items, chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create appends a new item to the stored menu collection.
func (h *MenuItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	price, problem := req.validate()
	if problem != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": problem})
		return
	}

	items, err := catalog.LoadStored(r.Context(), h.store)
	if err != nil {
		log.Printf("ERROR: create menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	item := catalog.MenuItem{
		ID:         uuid.NewString(),
		Name:       req.Name,
		BasePrice:  price,
		CategoryID: req.CategoryID,
		Image:      req.Image,
	}
	items = append(items, item)

	if err := catalog.SaveStored(r.Context(), h.store, items); err != nil {
		log.Printf("ERROR: create menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update replaces an existing stored menu item.
func (h *MenuItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	price, problem := req.validate()
	if problem != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": problem})
		return
	}

	items, err := catalog.LoadStored(r.Context(), h.store)
	if err != nil {
		log.Printf("ERROR: update menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	id := chi.URLParam(r, "id")
	updated := false
	for i := range items {
		if items[i].ID == id {
			items[i].Name = req.Name
			items[i].BasePrice = price
			items[i].CategoryID = req.CategoryID
			items[i].Image = req.Image
			updated = true
			break
		}
	}
	if !updated {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	if err := catalog.SaveStored(r.Context(), h.store, items); err != nil {
		log.Printf("ERROR: update menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	item, _ := catalog.FindItem(items, id)
	writeJSON(w, http.StatusOK, item)
}

// Delete removes a stored menu item.
func (h *MenuItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	items, err := catalog.LoadStored(r.Context(), h.store)
	if err != nil {
		log.Printf("ERROR: delete menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	id := chi.URLParam(r, "id")
	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	if err := catalog.SaveStored(r.Context(), h.store, kept); err != nil {
		log.Printf("ERROR: delete menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
