package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
)

// loadAppConfig loads the application configuration from envFile, an
// optional config.yaml and the environment.
func loadAppConfig(envFile string) (*config.Config, error) {
	cfg, err := config.LoadWithOptions(config.Options{
		EnvFile:    envFile,
		ConfigFile: "config.yaml",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfig records the non-secret parts of cfg.
func logConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"token_lifetime", cfg.Auth.TokenLifetime.String())
	logger.Debug("auth configuration",
		"jwt_secret_present", cfg.Auth.JWTSecret != "",
		"bcrypt_cost", cfg.Auth.BCryptCost)
}
