package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected a default allowed origin")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_HOURS", "72")
	t.Setenv("ALLOWED_ORIGINS", "https://habita.app, https://staging.habita.app")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.JWTExpiry != 72*time.Hour {
		t.Errorf("JWTExpiry = %v, want 72h", cfg.JWTExpiry)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://staging.habita.app" {
		t.Errorf("AllowedOrigins = %v, want two trimmed origins", cfg.AllowedOrigins)
	}
}

func TestJWTExpiryIgnoresGarbage(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")

	cfg := Load()
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want fallback 24h", cfg.JWTExpiry)
	}
}
