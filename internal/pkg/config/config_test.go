package config

import "testing"

func TestDefaultAppConfigValidates(t *testing.T) {
	cfg := DefaultAppConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestValidateAggregatesErrors(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Server.Port = 0
	cfg.Worker.PoolSize = 0
	cfg.Logger.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Fatalf("expected 3 validation errors, got %d: %v", len(verrs), verrs)
	}
}

func TestLoggerFileRequiresPath(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Logger.Output = "file"
	cfg.Logger.File = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing logger.file")
	}
}

func TestAuthEnabledRequiresAPIKeys(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.Auth.Enabled = true

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for auth enabled with no api keys")
	}
}
