package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/rahathosen/cafe-pos/internal/config"
	"github.com/rahathosen/cafe-pos/internal/router"
	"github.com/rahathosen/cafe-pos/internal/storage"
	"github.com/rahathosen/cafe-pos/internal/ws"
)

func main() {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg := config.Load()

	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, store, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}

// openStore picks the blob-store backend: Postgres when DATABASE_URL is
// set, otherwise files under the data directory.
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DatabaseURL != "" {
		return storage.NewPostgres(context.Background(), cfg.DatabaseURL)
	}
	return storage.NewFile(cfg.DataDir)
}
