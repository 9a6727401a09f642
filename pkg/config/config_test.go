package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_EXPIRY", "")
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port: expected 8080, got %s", cfg.Port)
	}
	if cfg.AdminEmail != "contacto@revdev.mx" {
		t.Errorf("AdminEmail: expected canonical default, got %s", cfg.AdminEmail)
	}
	if cfg.SessionExpiry != 24*time.Hour {
		t.Errorf("SessionExpiry: expected 24h, got %s", cfg.SessionExpiry)
	}
	if cfg.MaxUploadBytes != 5*1024*1024 {
		t.Errorf("MaxUploadBytes: expected 5MiB, got %d", cfg.MaxUploadBytes)
	}
	if cfg.IsDatabaseConfigured() {
		t.Error("empty DATABASE_URL must mean demo mode")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/revdev")
	t.Setenv("SESSION_EXPIRY", "2h")
	t.Setenv("MAX_UPLOAD_BYTES", "1048576")

	cfg := Load()

	if !cfg.IsDatabaseConfigured() {
		t.Error("expected configured database")
	}
	if cfg.SessionExpiry != 2*time.Hour {
		t.Errorf("SessionExpiry: expected 2h, got %s", cfg.SessionExpiry)
	}
	if cfg.MaxUploadBytes != 1048576 {
		t.Errorf("MaxUploadBytes: expected override, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoad_BadExpiryFallsBack(t *testing.T) {
	t.Setenv("SESSION_EXPIRY", "soon")

	cfg := Load()
	if cfg.SessionExpiry != 24*time.Hour {
		t.Errorf("invalid SESSION_EXPIRY should keep the default, got %s", cfg.SessionExpiry)
	}
}

func TestIsBlobConfigured(t *testing.T) {
	cfg := &Config{S3Bucket: "media", S3AccessKey: "k", S3SecretKey: "s"}
	if !cfg.IsBlobConfigured() {
		t.Error("expected blob storage configured")
	}

	cfg.S3SecretKey = ""
	if cfg.IsBlobConfigured() {
		t.Error("missing secret must disable blob storage")
	}
}
