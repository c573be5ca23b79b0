package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting, read from the environment.
type Config struct {
	DatabaseURL  string
	JWTSecretKey string
	ServerPort   int

	AdminPasswordHash string
	Location          *time.Location
	CheckInHour       int
	GameDuration      time.Duration

	CORSAllowedOrigins []string
	RoundRateLimit     float64

	R2 R2Config
}

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	PublicBaseURL   string
}

func (c R2Config) fields() []string {
	return []string{c.AccountID, c.AccessKeyID, c.SecretAccessKey, c.BucketName, c.PublicBaseURL}
}

// Enabled reports whether archiving to R2 is configured.
func (c R2Config) Enabled() bool {
	for _, f := range c.fields() {
		if f != "" {
			return true
		}
	}
	return false
}

// Load reads the configuration. A .env file in the working directory is loaded
// first when present; real environment variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		DatabaseURL:       get("DATABASE_URL", ""),
		JWTSecretKey:      get("JWT_SECRET_KEY", ""),
		AdminPasswordHash: get("ADMIN_PASSWORD_HASH", ""),
		R2: R2Config{
			AccountID:       get("R2_ACCOUNT_ID", ""),
			AccessKeyID:     get("R2_ACCESS_KEY_ID", ""),
			SecretAccessKey: get("R2_SECRET_ACCESS_KEY", ""),
			BucketName:      get("R2_BUCKET_NAME", ""),
			PublicBaseURL:   get("R2_PUBLIC_BASE_URL", ""),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	if cfg.JWTSecretKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	port, err := strconv.Atoi(get("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	tz := get("TOURNAMENT_TIMEZONE", "America/Chicago")
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TOURNAMENT_TIMEZONE %q: %w", tz, err)
	}

	cfg.CheckInHour, err = strconv.Atoi(get("CHECK_IN_HOUR", "17"))
	if err != nil || cfg.CheckInHour < 0 || cfg.CheckInHour > 23 {
		return nil, fmt.Errorf("CHECK_IN_HOUR must be an hour between 0 and 23")
	}

	cfg.GameDuration, err = time.ParseDuration(get("GAME_DURATION", "20m"))
	if err != nil || cfg.GameDuration <= 0 {
		return nil, fmt.Errorf("GAME_DURATION must be a positive duration such as 20m")
	}

	cfg.RoundRateLimit, err = strconv.ParseFloat(get("ROUND_RATE_LIMIT", "1"), 64)
	if err != nil || cfg.RoundRateLimit <= 0 {
		return nil, fmt.Errorf("ROUND_RATE_LIMIT must be a positive number of requests per second")
	}

	for _, origin := range strings.Split(get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.R2.Enabled() {
		for _, f := range cfg.R2.fields() {
			if f == "" {
				return nil, fmt.Errorf("R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET_NAME and R2_PUBLIC_BASE_URL must be set together")
			}
		}
	}

	return cfg, nil
}
