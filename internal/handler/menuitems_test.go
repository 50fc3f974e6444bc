package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rahathosen/cafe-pos/internal/handler"
	"github.com/rahathosen/cafe-pos/internal/storage"
)

func setupMenuItemRouter() (*chi.Mux, *storage.Memory) {
	store := storage.NewMemory()
	r := chi.NewRouter()
	h := handler.NewMenuItemHandler(store)
	r.Route("/menu-items", h.RegisterRoutes)
	return r, store
}

func createMenuItem(t *testing.T, router http.Handler, body map[string]string) map[string]interface{} {
	t.Helper()
	rr := doRequest(t, router, "POST", "/menu-items", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	return decodeObject(t, rr)
}

func TestMenuItemList_Empty(t *testing.T) {
	router, _ := setupMenuItemRouter()

	rr := doRequest(t, router, "GET", "/menu-items", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if resp := decodeList(t, rr); len(resp) != 0 {
		t.Errorf("expected empty list, got %d items", len(resp))
	}
}

func TestMenuItemCreate(t *testing.T) {
	router, _ := setupMenuItemRouter()

	created := createMenuItem(t, router, map[string]string{
		"name": "Flat White", "price": "4.25", "category_id": "1", "image": "/images/flat-white.jpg",
	})

	if created["id"] == "" || created["id"] == nil {
		t.Error("created item has no ID")
	}
	if created["name"] != "Flat White" {
		t.Errorf("name: got %v", created["name"])
	}
	if created["price"] != "4.25" {
		t.Errorf("price: got %v, want 4.25", created["price"])
	}

	list := decodeList(t, doRequest(t, router, "GET", "/menu-items", nil))
	if len(list) != 1 {
		t.Errorf("expected 1 stored item, got %d", len(list))
	}
}

func TestMenuItemCreate_Validation(t *testing.T) {
	router, _ := setupMenuItemRouter()

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"price": "4.25", "category_id": "1"}},
		{"missing price", map[string]string{"name": "Flat White", "category_id": "1"}},
		{"bad price", map[string]string{"name": "Flat White", "price": "abc", "category_id": "1"}},
		{"negative price", map[string]string{"name": "Flat White", "price": "-1", "category_id": "1"}},
		{"missing category", map[string]string{"name": "Flat White", "price": "4.25"}},
		{"unknown category", map[string]string{"name": "Flat White", "price": "4.25", "category_id": "99"}},
	}
	for _, tc := range cases {
		rr := doRequest(t, router, "POST", "/menu-items", tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want %d", tc.name, rr.Code, http.StatusBadRequest)
		}
	}
}

func TestMenuItemGet(t *testing.T) {
	router, _ := setupMenuItemRouter()
	created := createMenuItem(t, router, map[string]string{
		"name": "Flat White", "price": "4.25", "category_id": "1",
	})
	id := created["id"].(string)

	rr := doRequest(t, router, "GET", "/menu-items/"+id, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if got := decodeObject(t, rr); got["name"] != "Flat White" {
		t.Errorf("name: got %v", got["name"])
	}
}

func TestMenuItemGet_NotFound(t *testing.T) {
	router, _ := setupMenuItemRouter()

	rr := doRequest(t, router, "GET", "/menu-items/missing", nil)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMenuItemUpdate(t *testing.T) {
	router, _ := setupMenuItemRouter()
	created := createMenuItem(t, router, map[string]string{
		"name": "Flat White", "price": "4.25", "category_id": "1",
	})
	id := created["id"].(string)

	rr := doRequest(t, router, "PUT", "/menu-items/"+id, map[string]string{
		"name": "Flat White", "price": "4.75", "category_id": "1",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := decodeObject(t, rr); got["price"] != "4.75" {
		t.Errorf("price after update: got %v, want 4.75", got["price"])
	}
}

func TestMenuItemUpdate_NotFound(t *testing.T) {
	router, _ := setupMenuItemRouter()

	rr := doRequest(t, router, "PUT", "/menu-items/missing", map[string]string{
		"name": "Flat White", "price": "4.75", "category_id": "1",
	})

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMenuItemDelete(t *testing.T) {
	router, _ := setupMenuItemRouter()
	created := createMenuItem(t, router, map[string]string{
		"name": "Flat White", "price": "4.25", "category_id": "1",
	})
	id := created["id"].(string)

	rr := doRequest(t, router, "DELETE", "/menu-items/"+id, nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNoContent)
	}

	if list := decodeList(t, doRequest(t, router, "GET", "/menu-items", nil)); len(list) != 0 {
		t.Errorf("expected empty list after delete, got %d items", len(list))
	}
}

func TestMenuItemDelete_NotFound(t *testing.T) {
	router, _ := setupMenuItemRouter()

	rr := doRequest(t, router, "DELETE", "/menu-items/missing", nil)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMenuItemList_CorruptBlobTreatedAsEmpty(t *testing.T) {
	router, store := setupMenuItemRouter()
	if err := store.Save(context.Background(), storage.KeyMenuItems, []byte("[oops")); err != nil {
		t.Fatalf("save: %v", err)
	}

	rr := doRequest(t, router, "GET", "/menu-items", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	if resp := decodeList(t, rr); len(resp) != 0 {
		t.Errorf("expected empty list, got %d items", len(resp))
	}
}
