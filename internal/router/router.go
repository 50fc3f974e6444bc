package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rahathosen/cafe-pos/internal/cart"
	"github.com/rahathosen/cafe-pos/internal/config"
	"github.com/rahathosen/cafe-pos/internal/handler"
	"github.com/rahathosen/cafe-pos/internal/pricing"
	"github.com/rahathosen/cafe-pos/internal/receipt"
	"github.com/rahathosen/cafe-pos/internal/storage"
	"github.com/rahathosen/cafe-pos/internal/ws"
)

// New creates a Chi router with all terminal routes wired up.
func New(cfg *config.Config, store storage.Store, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// WebSocket sales feed
	r.Get("/ws/sales", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	// One cart per terminal process; the calculator is shared by the cart
	// preview and the checkout so both always agree.
	sessionCart := cart.New()
	calc := pricing.Calculator{ClampDiscount: cfg.ClampDiscount}

	catalogHandler := handler.NewCatalogHandler()
	catalogHandler.RegisterRoutes(r)

	menuItemHandler := handler.NewMenuItemHandler(store)
	r.Route("/menu-items", menuItemHandler.RegisterRoutes)

	cartHandler := handler.NewCartHandler(sessionCart, calc)
	r.Route("/cart", cartHandler.RegisterRoutes)

	receipts := receipt.NewRepository(store)
	checkoutHandler := handler.NewCheckoutHandler(sessionCart, calc, receipts, hub)
	checkoutHandler.RegisterRoutes(r)

	return r
}
