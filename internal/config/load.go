package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables (prefix AROUND_, with
// dots replaced by underscores: AROUND_SERVER_PORT, AROUND_DATABASE_URL, ...)
// and applies defaults. Outside production a missing JWT secret falls back to
// the fixed development secret; production fails fast instead.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.env", EnvDevelopment)
	v.SetDefault("auth.token_lifetime_minutes", DefaultTokenLifetimeMinutes)

	v.SetEnvPrefix("AROUND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys through Unmarshal,
	// so bind each key we read explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"server.env",
		"database.url",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
		"auth.bcrypt_cost",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.Server.Env == EnvProduction {
			return nil, fmt.Errorf("AROUND_AUTH_JWT_SECRET is required in production")
		}
		cfg.Auth.JWTSecret = DevJWTSecret
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
