package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root application configuration, read from the environment.
// All knobs are deployment switches, not runtime state.
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Auth         AuthConfig
	CORS         CORSConfig
	Log          LogConfig
	Sentry       SentryConfig
	Integrations IntegrationsConfig
}

type ServerConfig struct {
	Port int    `env:"PORT" env-default:"8080"`
	Env  string `env:"APP_ENV" env-default:"development"`
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL" env-required:"true"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" env-default:"5m"`
}

type AuthConfig struct {
	AdminUsername     string `env:"ADMIN_USERNAME"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	// Disabled turns the admin gate off entirely. Local/test use only.
	Disabled   bool          `env:"DISABLE_AUTH" env-default:"false"`
	SessionTTL time.Duration `env:"SESSION_TTL" env-default:"24h"`
}

type CORSConfig struct {
	AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

type SentryConfig struct {
	DSN string `env:"SENTRY_DSN"`
}

type IntegrationsConfig struct {
	GooglePlacesAPIKey    string `env:"GOOGLE_PLACES_API_KEY"`
	TrustpilotAccessToken string `env:"TRUSTPILOT_ACCESS_TOKEN"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction gates cookie security and log verbosity.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
