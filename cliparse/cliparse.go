package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// OAuth provider credentials and the public URL the provider redirects to
	OAuthClientID     string
	OAuthClientSecret string
	PublicBaseURL     string

	// How long an unconsumed identity session survives
	SessionTTL time.Duration
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pf2e-ratings", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.PublicBaseURL, "base-url", "", "Public base URL the OAuth provider redirects to")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Identity session retention window")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.OAuthClientID, "oauth-client-id", "", "OAuth client ID (prefer env)")
	fs.StringVar(&cfg.OAuthClientSecret, "oauth-client-secret", "", "OAuth client secret (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("DATABASE_TYPE must be sqlite or postgres")
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")
	}
	if cfg.PublicBaseURL == "" {
		return Config{}, errors.New("PUBLIC_BASE_URL required (the OAuth redirect target)")
	}

	if cfg.SessionTTL == 0 {
		if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_TTL env variable")
			}
			cfg.SessionTTL = ttl
		} else {
			cfg.SessionTTL = 10 * time.Minute
		}
	}

	// Secrets - MUST be provided
	if cfg.OAuthClientID == "" {
		cfg.OAuthClientID = os.Getenv("OAUTH_CLIENT_ID")
	}
	if cfg.OAuthClientID == "" {
		return Config{}, errors.New("OAUTH_CLIENT_ID required")
	}

	if cfg.OAuthClientSecret == "" {
		cfg.OAuthClientSecret = os.Getenv("OAUTH_CLIENT_SECRET")
	}
	if cfg.OAuthClientSecret == "" {
		return Config{}, errors.New("OAUTH_CLIENT_SECRET required")
	}

	return cfg, nil
}
