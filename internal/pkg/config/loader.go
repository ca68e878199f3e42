package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load builds an AppConfig from defaults, an optional YAML file, and
// environment variable overrides, in that precedence order, then validates
// the result.
func Load() (*AppConfig, error) {
	cfg := DefaultAppConfig()

	if configFile := resolveConfigFile(); configFile != "" {
		if err := loadFromFile(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// DefaultAppConfig returns the built-in defaults.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Worker: WorkerConfig{
			PoolSize:  4,
			QueueSize: 64,
			Timeout:   2 * time.Minute,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Auth: AuthConfig{
			Enabled: false,
		},
	}
}

func resolveConfigFile() string {
	if f := os.Getenv("RESUMEWRIGHT_CONFIG_FILE"); f != "" {
		return f
	}
	for _, path := range []string{"configs/resumewright.yaml", "configs/resumewright.yml", "resumewright.yaml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func loadFromFile(cfg *AppConfig, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return nil
}

func loadFromEnv(cfg *AppConfig) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if poolSize := os.Getenv("WORKER_POOL_SIZE"); poolSize != "" {
		if p, err := strconv.Atoi(poolSize); err == nil && p > 0 {
			cfg.Worker.PoolSize = p
		}
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Logger.Level = strings.ToLower(logLevel)
	}
	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		cfg.Logger.Format = strings.ToLower(logFormat)
	}
	if apiKeys := os.Getenv("API_KEYS"); apiKeys != "" {
		cfg.Auth.Enabled = true
		cfg.Auth.APIKeys = strings.Split(apiKeys, ",")
	}
}
