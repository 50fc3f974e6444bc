// Command seed writes the built-in cafe menu into the persisted menuItems
// collection so the dashboard starts from the same catalog the POS serves.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/rahathosen/cafe-pos/internal/catalog"
	"github.com/rahathosen/cafe-pos/internal/config"
	"github.com/rahathosen/cafe-pos/internal/storage"
)

func main() {
	force := flag.Bool("force", false, "overwrite an existing menuItems collection")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()

	var store storage.Store
	var err error
	if cfg.DatabaseURL != "" {
		store, err = storage.NewPostgres(ctx, cfg.DatabaseURL)
	} else {
		store, err = storage.NewFile(cfg.DataDir)
	}
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	existing, err := catalog.LoadStored(ctx, store)
	if err != nil {
		log.Fatalf("load menu items: %v", err)
	}
	if len(existing) > 0 && !*force {
		log.Fatalf("menuItems already holds %d items; re-run with -force to overwrite", len(existing))
	}

	items := catalog.Items()
	if err := catalog.SaveStored(ctx, store, items); err != nil {
		log.Fatalf("save menu items: %v", err)
	}
	log.Printf("Seeded %d menu items", len(items))
}
