package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Backend  BackendConfig
	Booking  BookingConfig
	HTTP     HTTPConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	HomeCountry string
}

// CatalogConfig selects where packages and blog posts are loaded from:
// "seed", "backend" or "postgres".
type CatalogConfig struct {
	Source string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type BookingConfig struct {
	SessionTTL   time.Duration
	RemoteSubmit bool
}

type HTTPConfig struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only enable it behind a proxy that overwrites those headers.
	TrustProxy     bool
}

const (
	CatalogSourceSeed     = "seed"
	CatalogSourceBackend  = "backend"
	CatalogSourcePostgres = "postgres"
)

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads an env-style file when it exists and lets process
// environment variables override it.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "travel-agency")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("HOME_COUNTRY", "India")
	v.SetDefault("CATALOG_SOURCE", CatalogSourceSeed)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("BACKEND_URL", "http://localhost:5000")
	v.SetDefault("BACKEND_TIMEOUT", "10s")
	v.SetDefault("BOOKING_SESSION_TTL", "30m")
	v.SetDefault("BOOKING_REMOTE_SUBMIT", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_RPS", 1)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("TRUST_PROXY", false)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Port:        v.GetString("PORT"),
			Debug:       v.GetBool("DEBUG"),
			LogPath:     v.GetString("LOG_PATH"),
			HomeCountry: v.GetString("HOME_COUNTRY"),
		},
		Catalog: CatalogConfig{
			Source: strings.ToLower(v.GetString("CATALOG_SOURCE")),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
			Timeout: v.GetDuration("BACKEND_TIMEOUT"),
		},
		Booking: BookingConfig{
			SessionTTL:   v.GetDuration("BOOKING_SESSION_TTL"),
			RemoteSubmit: v.GetBool("BOOKING_REMOTE_SUBMIT"),
		},
		HTTP: HTTPConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
			TrustProxy:     v.GetBool("TRUST_PROXY"),
		},
	}

	switch config.Catalog.Source {
	case CatalogSourceSeed, CatalogSourceBackend, CatalogSourcePostgres:
	default:
		return nil, errors.New("invalid CATALOG_SOURCE: " + config.Catalog.Source)
	}

	return config, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
