package config

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds all startup-time settings. It is built once by Load and
// passed explicitly into constructors; nothing reads the environment after
// startup.
type Config struct {
	// APIKey is the shared secret checked against the X-API-KEY header.
	// An empty value disables authentication.
	APIKey string

	// Port is the HTTP listen port.
	Port string

	// Mode selects the gin mode ("prod" enables release mode).
	Mode string

	// OCRLanguage is the Tesseract language code.
	OCRLanguage string

	// Workers is the OCR pool capacity: the maximum number of OCR
	// invocations running at the same time.
	Workers int

	// OCRTimeout bounds a single OCR invocation.
	OCRTimeout time.Duration

	// MaxUploadBytes caps the in-memory multipart form size.
	MaxUploadBytes int64
}

// Load reads configuration from a .env file (if present) and the process
// environment, applying defaults for everything except the API key.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:         os.Getenv("API_KEY"),
		Port:           getEnv("PORT", "8080"),
		Mode:           os.Getenv("MODE"),
		OCRLanguage:    getEnv("OCR_LANGUAGE", "eng"),
		Workers:        runtime.NumCPU(),
		OCRTimeout:     30 * time.Second,
		MaxUploadBytes: 10 << 20,
	}

	if v := os.Getenv("OCR_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, errors.Errorf("invalid OCR_WORKERS %q", v)
		}
		cfg.Workers = n
	}

	if v := os.Getenv("OCR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, errors.Errorf("invalid OCR_TIMEOUT %q", v)
		}
		cfg.OCRTimeout = d
	}

	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		mb, err := strconv.ParseInt(v, 10, 64)
		if err != nil || mb <= 0 {
			return nil, errors.Errorf("invalid MAX_UPLOAD_MB %q", v)
		}
		cfg.MaxUploadBytes = mb << 20
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
