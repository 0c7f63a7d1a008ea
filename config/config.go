package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	BaseURL string

	// ✅ Record store
	StoreBackend string // "file" (default) or "badger"
	DataFile     string
	BadgerPath   string

	// ✅ Poster uploads
	UploadDir string

	// ✅ CORS (empty list = allow all origins)
	AllowedOrigins []string

	// Earlier revisions of the service accepted past dates; current
	// behavior rejects them unless this is switched off.
	RequireFutureDate bool
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	requireFuture := true
	if raw := os.Getenv("REQUIRE_FUTURE_DATE"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			log.Printf("Invalid REQUIRE_FUTURE_DATE value %q, keeping default true", raw)
		} else {
			requireFuture = parsed
		}
	}

	var origins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:    getenv("PORT", "8000"),
		BaseURL: getenv("BASE_URL", "http://localhost:8000"),

		StoreBackend: getenv("STORE_BACKEND", "file"),
		DataFile:     getenv("DATA_FILE", "events.json"),
		BadgerPath:   getenv("BADGER_PATH", "events.db"),

		UploadDir: getenv("UPLOAD_DIR", "uploads"),

		AllowedOrigins: origins,

		RequireFutureDate: requireFuture,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
