package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppAddr      string
	Environment  string
	GinMode      string
	SeedDemoData bool
}

// Load reads configuration from the environment, with an optional .env file
// layered underneath. A missing .env file is not an error.
func Load() *Config {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env file")
	}

	cfg := &Config{
		AppAddr:      strings.TrimSpace(os.Getenv("APP_ADDR")),
		Environment:  strings.TrimSpace(os.Getenv("ENV")),
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}

	if cfg.AppAddr == "" {
		cfg.AppAddr = ":3011"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg
}
