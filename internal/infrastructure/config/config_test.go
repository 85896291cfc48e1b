package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default TTL 24h, got %v", cfg.TokenTTL)
	}
	if !cfg.Development() {
		t.Fatalf("expected default env to be development")
	}
}

func TestResolveSecret_ExplicitWins(t *testing.T) {
	cfg := &Config{Env: "production", JWTSecret: "real-secret"}
	secret, err := cfg.ResolveSecret()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if secret != "real-secret" {
		t.Fatalf("unexpected secret %q", secret)
	}
}

func TestResolveSecret_DevFallback(t *testing.T) {
	cfg := &Config{Env: "development"}
	secret, err := cfg.ResolveSecret()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if secret != DevFallbackSecret {
		t.Fatalf("expected dev fallback, got %q", secret)
	}
}

func TestResolveSecret_ProductionRequiresOverride(t *testing.T) {
	cfg := &Config{Env: "production"}
	if _, err := cfg.ResolveSecret(); err == nil {
		t.Fatalf("expected startup failure without JWT_SECRET in production")
	}
}
