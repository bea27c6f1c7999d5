// internal/config/config.go
// Package config loads and validates the service configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// DefaultConfigFile is read when present; environment variables override it.
const DefaultConfigFile = "config/.env"

// Config holds the application's configuration, loaded from .env and the environment.
type Config struct {
	APIHost              string `validate:"required"`
	Port                 int    `validate:"required,min=1,max=65535"`
	LogLevel             string `validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	LogFile              string
	GinMode              string   `validate:"oneof=debug release test"`
	MaxMultipartMemoryMB int      `validate:"min=1"`
	RegisterFields       []string `validate:"required,min=1,dive,required"`
}

// Addr is the listen address built from APIHost and Port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.Port)
}

// MaxMultipartMemory is the in-memory multipart limit in bytes.
func (c *Config) MaxMultipartMemory() int64 {
	return int64(c.MaxMultipartMemoryMB) << 20
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, raw := range parts {
		if item := strings.TrimSpace(raw); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Load loads and validates the full application configuration.
func Load() (*Config, error) {
	return LoadFile(DefaultConfigFile)
}

// LoadFile is Load with an explicit .env path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetDefault("API_HOST", DefaultAPIHost)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("MAX_MULTIPART_MEMORY_MB", DefaultMaxMultipartMemoryMB)
	v.SetDefault("REGISTER_FIELDS", strings.Join(DefaultRegisterFields, ","))

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			var cfgErr viper.ConfigFileNotFoundError
			if !errors.As(err, &cfgErr) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	appConfig := &Config{
		APIHost:              v.GetString("API_HOST"),
		Port:                 v.GetInt("PORT"),
		LogLevel:             strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFile:              v.GetString("LOG_FILE"),
		GinMode:              v.GetString("GIN_MODE"),
		MaxMultipartMemoryMB: v.GetInt("MAX_MULTIPART_MEMORY_MB"),
		RegisterFields:       parseList(v.GetString("REGISTER_FIELDS")),
	}

	if err := validate.Struct(appConfig); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return appConfig, nil
}
