package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       slog.Level
	EnableWriteAPI bool
	EnableMetrics  bool
	RateLimit      string // ulule/limiter format, e.g. "300-M"
	AllowedOrigins []string
	DefaultCountry string
}

const (
	defaultPort           = "8080"
	defaultRateLimit      = "300-M"
	defaultCountry        = "IN"
	defaultAllowedOrigins = "*"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENABLE_WRITE_API", false)
	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins)
	v.SetDefault("DEFAULT_COUNTRY", defaultCountry)

	// Actual environment variables override .env values and defaults.
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableWriteAPI: v.GetBool("ENABLE_WRITE_API"),
		EnableMetrics:  v.GetBool("ENABLE_METRICS"),
		RateLimit:      v.GetString("RATE_LIMIT"),
		DefaultCountry: strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_COUNTRY"))),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", v.GetString("LOG_LEVEL"), err)
	}

	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", cfg.RateLimit, err)
	}

	if cfg.DefaultCountry == "" {
		cfg.DefaultCountry = defaultCountry
	}

	cfg.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultAllowedOrigins}
	}

	return cfg, nil
}

// AllowAllOrigins reports whether CORS should accept any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
