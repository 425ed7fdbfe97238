package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

type Config struct {
	Port            string `mapstructure:"PORT"`
	GinMode         string `mapstructure:"GIN_MODE"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	SQLitePath      string `mapstructure:"SQLITE_PATH"`
	TokenSecret     string `mapstructure:"TOKEN_SECRET"`
	TokenTTLMinutes int    `mapstructure:"TOKEN_TTL_MINUTES"`
	// ORDER_STATUS_POLICY: "permissive" (default, any transition) or
	// "forward" (fulfilment flow only).
	StatusPolicy  string `mapstructure:"ORDER_STATUS_POLICY"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	AdminName     string `mapstructure:"ADMIN_NAME"`
}

// Load reads configuration from the environment, with an optional app.env
// file in path layered underneath. Missing file is fine; env always wins.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about; bind the ones without
	// defaults so env-only settings are picked up.
	for _, key := range []string{"DATABASE_URL", "TOKEN_SECRET", "ADMIN_EMAIL", "ADMIN_PASSWORD"} {
		_ = v.BindEnv(key)
	}

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SQLITE_PATH", "vibecommerce.db")
	v.SetDefault("TOKEN_TTL_MINUTES", 24*60)
	v.SetDefault("ORDER_STATUS_POLICY", "permissive")
	v.SetDefault("ADMIN_NAME", "Store Admin")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.TokenSecret == "" {
		return nil, errors.New("TOKEN_SECRET is required")
	}
	return cfg, nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// OrderStatusPolicy resolves the configured transition table. Unknown values
// fall back to permissive, matching how the store has always behaved.
func (c *Config) OrderStatusPolicy() models.StatusPolicy {
	if c.StatusPolicy == "forward" {
		return models.ForwardOnlyPolicy()
	}
	return nil
}
