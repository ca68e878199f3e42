package config

import "fmt"

// ValidationError represents a single configuration validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error for field '%s': %s", e.Field, e.Message)
}

// ValidationErrors aggregates multiple ValidationError values.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%d configuration validation errors: %s (and %d more)", len(e), e[0].Error(), len(e)-1)
}

// Validate checks the whole AppConfig, aggregating per-section errors.
func (c *AppConfig) Validate() error {
	var errs ValidationErrors
	errs = append(errs, c.validateServer()...)
	errs = append(errs, c.validateWorker()...)
	errs = append(errs, c.validateLogger()...)
	errs = append(errs, c.validateAuth()...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c *AppConfig) validateServer() ValidationErrors {
	var errs ValidationErrors
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, ValidationError{Field: "server.port", Message: "port must be between 1 and 65535"})
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "server.read_timeout", Message: "must be positive"})
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, ValidationError{Field: "server.write_timeout", Message: "must be positive"})
	}
	return errs
}

func (c *AppConfig) validateWorker() ValidationErrors {
	var errs ValidationErrors
	if c.Worker.PoolSize <= 0 {
		errs = append(errs, ValidationError{Field: "worker.pool_size", Message: "must be positive"})
	}
	if c.Worker.QueueSize <= 0 {
		errs = append(errs, ValidationError{Field: "worker.queue_size", Message: "must be positive"})
	}
	return errs
}

func (c *AppConfig) validateLogger() ValidationErrors {
	var errs ValidationErrors
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if !validLevels[c.Logger.Level] {
		errs = append(errs, ValidationError{Field: "logger.level", Message: "must be one of: debug, info, warn, error, fatal"})
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Logger.Format] {
		errs = append(errs, ValidationError{Field: "logger.format", Message: "must be one of: json, text"})
	}
	validOutputs := map[string]bool{"stdout": true, "stderr": true, "file": true}
	if !validOutputs[c.Logger.Output] {
		errs = append(errs, ValidationError{Field: "logger.output", Message: "must be one of: stdout, stderr, file"})
	}
	if c.Logger.Output == "file" && c.Logger.File == "" {
		errs = append(errs, ValidationError{Field: "logger.file", Message: "required when output is 'file'"})
	}
	return errs
}

func (c *AppConfig) validateAuth() ValidationErrors {
	var errs ValidationErrors
	if c.Auth.Enabled && len(c.Auth.APIKeys) == 0 {
		errs = append(errs, ValidationError{Field: "auth.api_keys", Message: "required when auth.enabled is true"})
	}
	return errs
}
