package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("expected default driver postgres, got %s", cfg.DBDriver)
	}
	if cfg.JWTExpirationDur != 15*time.Minute {
		t.Errorf("expected default JWT expiry 15m, got %s", cfg.JWTExpirationDur)
	}
	if cfg.AMQPURL != "" {
		t.Errorf("expected AMQP disabled by default, got %s", cfg.AMQPURL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_EXPIRES_IN", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("expected driver sqlite, got %s", cfg.DBDriver)
	}
	if cfg.JWTExpirationDur != 30*time.Minute {
		t.Errorf("expected 30m expiry, got %s", cfg.JWTExpirationDur)
	}
}

func TestInvalidJWTExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTExpirationDur != 15*time.Minute {
		t.Errorf("expected fallback 15m, got %s", cfg.JWTExpirationDur)
	}
}

func TestGetCachesConfig(t *testing.T) {
	first, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Get() != first {
		t.Error("expected Get to return the loaded config")
	}
}
