package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultAppSecret = "default_insecure_app_secret_please_change_this"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Rate provider
	FXAPIURL            string
	FXHTTPTimeout       time.Duration
	FXFetchTimeout      time.Duration
	FXRequestsPerSecond float64

	// HTTP surface
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string

	MigrationsPath string
	AppSecret      string // seals the stored API key
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("FX_API_URL", "https://api.fxratesapi.com")
	viper.SetDefault("FX_HTTP_TIMEOUT", "10s")
	viper.SetDefault("FX_FETCH_TIMEOUT", "30s")
	viper.SetDefault("FX_REQUESTS_PER_SECOND", 2)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("APP_SECRET", defaultAppSecret)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         viper.GetString("PGSQL_URL"),
		Port:                viper.GetString("PORT"),
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:           viper.GetString("JWT_SECRET"),
		FXAPIURL:            strings.TrimRight(viper.GetString("FX_API_URL"), "/"),
		FXHTTPTimeout:       durationOrDefault("FX_HTTP_TIMEOUT", 10*time.Second),
		FXFetchTimeout:      durationOrDefault("FX_FETCH_TIMEOUT", 30*time.Second),
		FXRequestsPerSecond: viper.GetFloat64("FX_REQUESTS_PER_SECOND"),
		RateLimit:           viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:  splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		MigrationsPath:      viper.GetString("MIGRATIONS_PATH"),
		AppSecret:           viper.GetString("APP_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.FXRequestsPerSecond <= 0 {
		log.Println("Warning: FX_REQUESTS_PER_SECOND must be positive. Defaulting to 2.")
		cfg.FXRequestsPerSecond = 2
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.AppSecret == "" || cfg.AppSecret == defaultAppSecret {
		if cfg.IsProduction {
			return nil, errors.New("APP_SECRET must be set in production")
		}
		cfg.AppSecret = defaultAppSecret
		log.Println("Warning: APP_SECRET environment variable not set. Using default insecure secret.")
	}

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
