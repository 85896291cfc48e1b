package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DevFallbackSecret signs tokens when no JWT_SECRET is configured in a
// development environment. It is deliberately obvious so it can never be
// mistaken for a production secret; any other environment refuses to start
// without an explicit override.
const DevFallbackSecret = "insecure-dev-secret-do-not-deploy"

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=jewellery_inventory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// Development reports whether the process runs in a development environment.
func (c *Config) Development() bool {
	return c.Env == "development" || c.Env == "dev"
}

// ResolveSecret returns the signing secret to use. Outside development a
// missing JWT_SECRET is a hard startup failure rather than a silent
// fallback.
func (c *Config) ResolveSecret() (string, error) {
	if c.JWTSecret != "" {
		return c.JWTSecret, nil
	}
	if c.Development() {
		return DevFallbackSecret, nil
	}
	return "", errors.New("JWT_SECRET must be set outside development")
}
