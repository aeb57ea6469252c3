package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "PORT", "CORS_ALLOW_ORIGINS", "DATABASE_URL", "OBJECT_STORE",
		"LOCAL_STORE_DIR", "SIGNED_URL_TTL", "PROBE_CONCURRENCY", "CREDENTIAL_SCHEME",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("expected default port 8081, got %q", cfg.Port)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected default env dev, got %q", cfg.Env)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("expected default store local, got %q", cfg.ObjectStoreType)
	}
	if cfg.SignedURLTTL != 60 {
		t.Fatalf("expected default TTL 60, got %d", cfg.SignedURLTTL)
	}
	if cfg.ProbeConcurrency != 4 {
		t.Fatalf("expected default probe concurrency 4, got %d", cfg.ProbeConcurrency)
	}
	if cfg.CredentialScheme != "plain" {
		t.Fatalf("expected default credential scheme plain, got %q", cfg.CredentialScheme)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv("PORT", "9090")
	t.Setenv("OBJECT_STORE", "S3")
	t.Setenv("SIGNED_URL_TTL", "120")
	t.Setenv("CREDENTIAL_SCHEME", "BCRYPT")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected env production, got %q", cfg.Env)
	}
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.ObjectStoreType != "s3" {
		t.Fatalf("expected store s3, got %q", cfg.ObjectStoreType)
	}
	if cfg.SignedURLTTL != 120 {
		t.Fatalf("expected TTL 120, got %d", cfg.SignedURLTTL)
	}
	if cfg.CredentialScheme != "bcrypt" {
		t.Fatalf("expected credential scheme bcrypt, got %q", cfg.CredentialScheme)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[0] != want[0] || cfg.CORSAllowOrigin[1] != want[1] {
		t.Fatalf("unexpected CORS origins %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadRejectsBadInts(t *testing.T) {
	t.Setenv("SIGNED_URL_TTL", "not-a-number")
	t.Setenv("PROBE_CONCURRENCY", "-3")

	cfg := Load()
	if cfg.SignedURLTTL != 60 {
		t.Fatalf("expected TTL fallback 60, got %d", cfg.SignedURLTTL)
	}
	if cfg.ProbeConcurrency != 4 {
		t.Fatalf("expected probe concurrency fallback 4, got %d", cfg.ProbeConcurrency)
	}
}
