package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	UpstreamURL    string
	Port           string
	BaseURL        string
	RefreshSpec    string
	CacheTTL       time.Duration
	RequestTimeout time.Duration
}

// New sets up all config related services
func New() *Config {

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		UpstreamURL:    strings.TrimRight(os.Getenv("UPSTREAM_URL"), "/"),
		Port:           os.Getenv("PORT"),
		BaseURL:        os.Getenv("BASE_URL"),
		RefreshSpec:    envOrDefault("CATALOG_REFRESH_SPEC", "@every 5m"),
		CacheTTL:       envDuration("CACHE_TTL_SECONDS", 300),
		RequestTimeout: envDuration("REQUEST_TIMEOUT_SECONDS", 15),
	}

}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallbackSeconds int) time.Duration {
	seconds := fallbackSeconds
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			seconds = parsed
		}
	}
	return time.Duration(seconds) * time.Second
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
