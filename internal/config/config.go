package config

import "os"

type Config struct {
	Port string

	// DatabaseURL selects the Postgres blob-store backend when set.
	// When empty, receipts and menu items are kept in files under DataDir.
	DatabaseURL string
	DataDir     string

	// ClampDiscount limits the discount to [0, subtotal]. The terminal's
	// historical behavior is unclamped, so this defaults to off.
	ClampDiscount bool

	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8081"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		ClampDiscount:  os.Getenv("CLAMP_DISCOUNT") == "true",
		AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "http://localhost:3000")},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
