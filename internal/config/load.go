package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by LoadWithOptions.
const EnvPrefix = "TASKBOARD"

// Default values applied before any other configuration source.
const (
	DefaultPort          = 3000
	DefaultLogLevel      = "info"
	DefaultTokenLifetime = 24 * time.Hour
	DefaultBCryptCost    = 10
)

// keys lists every configuration key so that viper can resolve each one
// from the environment even when no default or config file entry exists.
var keys = []string{
	"server.port",
	"server.log_level",
	"database.url",
	"auth.jwt_secret",
	"auth.token_lifetime",
	"auth.bcrypt_cost",
}

// Options controls where LoadWithOptions looks for configuration.
type Options struct {
	// EnvFile is a dotenv file loaded into the process environment.
	// A missing file is not an error.
	EnvFile string

	// ConfigFile is an optional YAML file. Environment variables take
	// precedence over its values.
	ConfigFile string
}

// LoadWithOptions reads configuration from the given sources, applies
// defaults and validates the result.
func LoadWithOptions(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		// godotenv never overrides variables that are already set.
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("auth.token_lifetime", DefaultTokenLifetime)
	v.SetDefault("auth.bcrypt_cost", DefaultBCryptCost)

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err == nil {
			v.SetConfigFile(opts.ConfigFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
