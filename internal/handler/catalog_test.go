package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/rahathosen/cafe-pos/internal/handler"
)

// --- Shared helpers ---

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func setupCatalogRouter() *chi.Mux {
	r := chi.NewRouter()
	handler.NewCatalogHandler().RegisterRoutes(r)
	return r
}

// --- Tests ---

func TestCategories(t *testing.T) {
	rr := doRequest(t, setupCatalogRouter(), "GET", "/categories", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	resp := decodeList(t, rr)
	if len(resp) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(resp))
	}
	if resp[0]["name"] != "Hot Drinks" {
		t.Errorf("first category: got %v, want Hot Drinks", resp[0]["name"])
	}
}

func TestMenu_Unfiltered(t *testing.T) {
	rr := doRequest(t, setupCatalogRouter(), "GET", "/menu", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	resp := decodeList(t, rr)
	if len(resp) != 11 {
		t.Fatalf("expected 11 menu items, got %d", len(resp))
	}
}

func TestMenu_SearchFilter(t *testing.T) {
	rr := doRequest(t, setupCatalogRouter(), "GET", "/menu?q=tea", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	resp := decodeList(t, rr)
	if len(resp) != 1 || resp[0]["name"] != "Iced Tea" {
		t.Fatalf("search \"tea\": got %+v, want only Iced Tea", resp)
	}
}

func TestMenu_SearchNoMatchReturnsEmptyList(t *testing.T) {
	rr := doRequest(t, setupCatalogRouter(), "GET", "/menu?q=pizza", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
	}
	resp := decodeList(t, rr)
	if len(resp) != 0 {
		t.Errorf("expected empty list, got %d items", len(resp))
	}
}
