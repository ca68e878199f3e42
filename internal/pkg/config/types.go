// Package config holds the ambient application configuration for the
// cmd/server and cmd/cli surfaces: HTTP listener, worker pool sizing, and
// logging. It deliberately does not hold the per-conversion PDF options
// (page size, margin, PDF/A standard) — those live in the top-level
// resumewright.Config value that §6 says the library entry point always
// takes directly, never from a file or the environment.
package config

import "time"

// AppConfig is the root ambient configuration, YAML-loadable.
type AppConfig struct {
	Server ServerConfig `yaml:"server" json:"server"`
	Worker WorkerConfig `yaml:"worker" json:"worker"`
	Logger LoggerConfig `yaml:"logger" json:"logger"`
	Auth   AuthConfig   `yaml:"auth" json:"auth"`
}

// ServerConfig configures the cmd/server HTTP listener.
type ServerConfig struct {
	Port         int           `yaml:"port" json:"port"`
	Host         string        `yaml:"host" json:"host"`
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" json:"idle_timeout"`
}

// WorkerConfig sizes the bounded conversion worker pool (§5 expansion).
type WorkerConfig struct {
	PoolSize  int           `yaml:"pool_size" json:"pool_size"`
	QueueSize int           `yaml:"queue_size" json:"queue_size"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`
}

// LoggerConfig configures the zap-backed structured logger.
type LoggerConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"` // json, text
	Output string `yaml:"output" json:"output"` // stdout, stderr, file
	File   string `yaml:"file" json:"file"`
}

// AuthConfig gates /api/v1 behind an API key. Disabled by default so a
// fresh checkout runs unauthenticated; set auth.enabled and supply
// auth.api_keys (or the API_KEYS env var) to require one.
type AuthConfig struct {
	Enabled bool     `yaml:"enabled" json:"enabled"`
	APIKeys []string `yaml:"api_keys" json:"api_keys"`
}
