package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "CORS_ALLOW_ORIGINS", "DATABASE_URL", "JWT_SECRET", "TOKEN_TTL", "OBJECT_STORE", "LOCAL_STORE_DIR"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default token ttl 24h, got %s", cfg.TokenTTL)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected default store local, got %q", cfg.ObjectStoreType)
	}
	if cfg.IsProduction() {
		t.Fatalf("dev must not report production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()
	if !cfg.IsProduction() {
		t.Fatalf("expected production env")
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("expected 2h ttl, got %s", cfg.TokenTTL)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("expected s3 store, got %q", cfg.ObjectStoreType)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadInvalidTTLFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	if cfg := Load(); cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected fallback ttl, got %s", cfg.TokenTTL)
	}
}
