package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if c.AppEnv != "development" {
		t.Fatalf("expected default APP_ENV development, got %s", c.AppEnv)
	}
	if c.LogLevel != "info" || c.LogFormat != "json" {
		t.Fatalf("unexpected log defaults: %s/%s", c.LogLevel, c.LogFormat)
	}
	if c.OutputIndent != 2 {
		t.Fatalf("expected default OUTPUT_INDENT 2, got %d", c.OutputIndent)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OUTPUT_INDENT", "4")
	t.Setenv("LOG_FORMAT", "console")

	c, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if c.OutputIndent != 4 {
		t.Fatalf("expected OUTPUT_INDENT 4, got %d", c.OutputIndent)
	}
	if c.LogFormat != "console" {
		t.Fatalf("expected console log format, got %s", c.LogFormat)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid LOG_LEVEL")
	}
}
