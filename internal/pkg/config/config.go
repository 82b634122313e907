package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is the fallback signing key used when JWT_SECRET is
// unset. It is an insecure default; main logs a warning when it is active.
const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret    string `env:"JWT_SECRET, default=your-secret-key-change-in-production"`
	TokenTTLDays int    `env:"TOKEN_TTL_DAYS, default=30"`

	// InspectorSignupSecret gates inspector account creation. Injected
	// here so no secret literal lives in service code; the default is a
	// known deployment weakness, not a safe value.
	InspectorSignupSecret string `env:"INSPECTOR_SIGNUP_SECRET, default=Chiru_041217_"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=*"`

	Mongo MongoConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pti_system"`
}

// TokenTTL returns the configured token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLDays) * 24 * time.Hour
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
