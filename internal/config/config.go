package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	MongoURI   string
	JWTSecret  string
	AdminEmail string
	CORSOrigin string
}

// Load reads .env when present and resolves the server configuration from
// the environment. MONGODB_URI and JWT_SECRET are mandatory.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "5000"),
		MongoURI:   os.Getenv("MONGODB_URI"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}

	var missing []string
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGODB_URI")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %v", missing)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
