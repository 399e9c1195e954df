package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Addr() != "127.0.0.1:8787" {
		t.Fatalf("unexpected default addr: %s", cfg.Server.Addr())
	}
	if cfg.Weather.APIKey != "" {
		t.Fatalf("expected empty api key by default, got %q", cfg.Weather.APIKey)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.yaml")
	content := `
server:
  host: 0.0.0.0
  port: 9000
weather:
  provider_url: https://example.test/current.json
  api_key: yaml-key
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:9000" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr())
	}
	if cfg.Weather.ProviderURL != "https://example.test/current.json" {
		t.Fatalf("unexpected provider url: %s", cfg.Weather.ProviderURL)
	}
	if cfg.Weather.APIKey != "yaml-key" {
		t.Fatalf("unexpected api key: %s", cfg.Weather.APIKey)
	}
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.yaml")
	if err := os.WriteFile(path, []byte("weather:\n  api_key: yaml-key\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TRAINY_WEATHER_API_KEY", "env-key")
	t.Setenv("TRAINY_SERVER_PORT", "9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Weather.APIKey != "env-key" {
		t.Fatalf("expected env override, got %q", cfg.Weather.APIKey)
	}
	if cfg.Server.Port != 9999 {
		t.Fatalf("expected env port, got %d", cfg.Server.Port)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proxy.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative port")
	}
}
