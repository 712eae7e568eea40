package cliparse

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DevSessionSecret signs cookies in development when no secret is configured.
const DevSessionSecret = "default_secret_for_development"

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	SessionSecret string
	Environment   string
}

// IsProduction reports whether the server runs with production settings
func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// LoadDotEnv loads variables from the given files (default .env) without
// overriding ones already set. Missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			slog.Warn("failed to load env file", "file", f, "error", err)
		}
	}
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("me-tracker", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie secret (prefer env)")
	fs.StringVar(&cfg.Environment, "env", "", "Environment (development or production)")

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
			cfg.Port = 3318 // default
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

	if cfg.Environment == "" {
		cfg.Environment = os.Getenv("APP_ENV")
	}
	if cfg.Environment == "" {
		cfg.Environment = os.Getenv("NODE_ENV")
	}
	if cfg.Environment == "" {
		cfg.Environment = EnvDevelopment
	}

	// Secret - MUST be provided in production
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return Config{}, errors.New("SESSION_SECRET required in production")
		}
		slog.Warn("SESSION_SECRET not set, using development default")
		cfg.SessionSecret = DevSessionSecret
	}

	return cfg, nil
}
