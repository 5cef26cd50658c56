package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the service configuration read from the environment.
type Config struct {
	Port    string `env:"PORT" envDefault:"8000"`
	GinMode string `env:"GIN_MODE"`

	// DatabaseURL selects Postgres; when empty SQLite at DataPath is used.
	DatabaseURL string `env:"DATABASE_URL"`
	DataPath    string `env:"DATA_PATH" envDefault:"api_keys.db"`

	JWTSecret       string `env:"JWT_SECRET"`
	APIMasterSecret string `env:"API_MASTER_SECRET"`
	AdminUsername   string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword   string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	DefaultRateLimit int `env:"DEFAULT_RATE_LIMIT" envDefault:"10000"`

	// PresetsFile is an optional YAML file of default parameters and roles.
	PresetsFile string `env:"FATIGUE_PRESETS_FILE"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// DefaultEnvPaths are tried in order; the first that exists is loaded.
var DefaultEnvPaths = []string{".env", "../.env", "../../.env"}

// LoadDotEnv loads the first existing file of paths into the environment.
// Variables already set win over the file.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DefaultRateLimit <= 0 {
		return nil, fmt.Errorf("DEFAULT_RATE_LIMIT %d must be positive", cfg.DefaultRateLimit)
	}
	return cfg, nil
}
