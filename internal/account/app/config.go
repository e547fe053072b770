package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/roster/pkg/cryptox"
	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DatabaseURL string        `env:"ROSTER_DATABASE_URL" envDefault:"roster.db"` // sqlite path, or a postgres:// URL
	JWTSecret   string        `env:"ROSTER_JWT_SECRET"`                          // HS256 key, required outside dev
	Issuer      string        `env:"ROSTER_ISSUER"       envDefault:"roster-account"`
	TokenTTL    time.Duration `env:"ROSTER_TOKEN_TTL"    envDefault:"168h"`
	BcryptCost  int           `env:"ROSTER_BCRYPT_COST"  envDefault:"10"`

	Env                 string        `env:"ENV"                   envDefault:"dev"` // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"`
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	OtelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
}

var ErrMissingSecret = errors.New("ROSTER_JWT_SECRET is required outside dev")

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) IsDev() bool { return c.Env == "dev" }

// UsesPostgres reports whether DatabaseURL selects the postgres driver.
func (c Config) UsesPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// Validate checks the configuration is usable. An empty secret is allowed in
// dev only, New replaces it with a random one.
func (c Config) Validate() error {
	if c.JWTSecret == "" && !c.IsDev() {
		return ErrMissingSecret
	}
	if c.DatabaseURL == "" {
		return errors.New("ROSTER_DATABASE_URL must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("ROSTER_TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("ROSTER_BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// ephemeralSecret returns a random secret for dev runs. Tokens signed with it
// stop verifying when the process restarts.
func ephemeralSecret() (string, error) {
	return cryptox.GenerateToken(cryptox.TokenSize256)
}
