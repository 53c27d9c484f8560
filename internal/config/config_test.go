package config

import (
	"path/filepath"
	"testing"
	"time"

	"sladrehank/internal/ssb"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", c.Port)
	}
	if c.SSBURL != ssb.DefaultBaseURL {
		t.Errorf("expected default SSB URL, got %q", c.SSBURL)
	}
	if c.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("expected default model, got %q", c.GeminiModel)
	}
	if c.CacheTTL() != time.Hour {
		t.Errorf("expected 1h cache TTL, got %v", c.CacheTTL())
	}
	if c.HTTPTimeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", c.HTTPTimeout())
	}
	if c.GeminiAPIKey != "" {
		t.Errorf("expected empty key by default, got %q", c.GeminiAPIKey)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SLADREHANK_PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "env-secret")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Port != 9090 {
		t.Errorf("expected env port 9090, got %d", c.Port)
	}
	if c.GeminiAPIKey != "env-secret" {
		t.Errorf("expected key from GEMINI_API_KEY, got %q", c.GeminiAPIKey)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Config{
		Port:           9000,
		SSBURL:         "http://localhost:1234/table/",
		GeminiModel:    "gemini-1.5-pro",
		CacheTTLMin:    5,
		HTTPTimeoutSec: 10,
	}
	if err := Save(want, path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got.Port != want.Port || got.SSBURL != want.SSBURL || got.GeminiModel != want.GeminiModel {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, want)
	}
	if got.CacheTTL() != 5*time.Minute {
		t.Errorf("expected 5m TTL, got %v", got.CacheTTL())
	}
}
