package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:5000/api/v1" {
		t.Fatalf("unexpected default API URL: %s", cfg.APIBaseURL)
	}
	if cfg.Production() {
		t.Fatalf("default env must not be production")
	}
	if !strings.HasSuffix(cfg.CredentialsFile, "credentials.json") {
		t.Fatalf("unexpected credentials path: %s", cfg.CredentialsFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LANDMARKET_API_URL", "https://market.example.com/api/v1")
	t.Setenv("LANDMARKET_CREDENTIALS_FILE", "/tmp/creds.json")
	t.Setenv("ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://market.example.com/api/v1" {
		t.Fatalf("API URL override not applied: %s", cfg.APIBaseURL)
	}
	if cfg.CredentialsFile != "/tmp/creds.json" {
		t.Fatalf("credentials path override not applied: %s", cfg.CredentialsFile)
	}
	if !cfg.Production() {
		t.Fatalf("expected production env")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("https production config should validate: %v", err)
	}
}

func TestValidate_RejectsPlaintextProduction(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://market.example.com/api/v1", Env: "production"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("plaintext production endpoint must be rejected")
	}
}
