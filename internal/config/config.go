// Package config loads the backend configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

type Config struct {
	// FirestoreProjectID selects the real backend. When it is empty
	// the in-memory store is used.
	FirestoreProjectID string `env:"FIRESTORE_PROJECT_ID"`

	// CredentialsFile is the path to a service account JSON file.
	// When empty, Application Default Credentials are used.
	CredentialsFile string `env:"FIREBASE_CREDENTIALS"`

	TokenSecret string        `env:"TOKEN_SECRET" envDefault:"smartbudget-dev-secret"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// Load reads the configuration from a .env file (if present) and the
// environment.
func Load() (Config, error) {
	// A missing .env file is fine, the environment takes over
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}

	return cfg, nil
}
