package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	BACKEND_URL string
	CORS_ORIGIN string

	// Backoffice session surface
	JWT_SECRET               string
	ADMIN_TOKEN              string
	BACKOFFICE_USER          string
	BACKOFFICE_PASSWORD_HASH string

	GOOGLE_CLIENT_ID      string
	GOOGLE_CLIENT_SECRET  string
	GOOGLE_REDIRECT_URL   string
	GOOGLE_ALLOWED_EMAILS string
)

// LoadEnv loads the settings shared by both edge servers.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	BACKEND_URL = strings.TrimSpace(getEnv("BACKEND_URL", "http://localhost:8090"))
	if BACKEND_URL == "" {
		BACKEND_URL = "http://localhost:8090"
	}
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
}

// LoadBackofficeEnv loads everything the admin server needs on top of the
// shared settings. Google login stays disabled unless fully configured.
func LoadBackofficeEnv() {
	LoadEnv()

	JWT_SECRET = mustEnv("JWT_SECRET")
	ADMIN_TOKEN = mustEnv("ADMIN_TOKEN")
	BACKOFFICE_USER = mustEnv("BACKOFFICE_USER")
	BACKOFFICE_PASSWORD_HASH = mustEnv("BACKOFFICE_PASSWORD_HASH")

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_ALLOWED_EMAILS = getEnv("GOOGLE_ALLOWED_EMAILS", "")
}

// GoogleLoginEnabled reports whether the optional OIDC login is configured.
func GoogleLoginEnabled() bool {
	return GOOGLE_CLIENT_ID != "" && GOOGLE_CLIENT_SECRET != "" && GOOGLE_REDIRECT_URL != ""
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
