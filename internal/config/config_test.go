package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.DBHost != "localhost" {
		t.Fatalf("DBHost default: got %q", cfg.DBHost)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port default: got %q", cfg.Port)
	}
	if cfg.JWTAccessExpiry != 60*time.Minute {
		t.Fatalf("JWTAccessExpiry default: got %v", cfg.JWTAccessExpiry)
	}
	if cfg.UploadDir != "uploads" {
		t.Fatalf("UploadDir default: got %q", cfg.UploadDir)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg := Load()
	if cfg.DBHost != "db.internal" {
		t.Fatalf("DBHost override: got %q", cfg.DBHost)
	}
	if cfg.JWTAccessExpiry != 30*time.Minute {
		t.Fatalf("JWTAccessExpiry override: got %v", cfg.JWTAccessExpiry)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "pmtrack_db",
		DBSSLMode:  "disable",
	}

	want := "host=localhost user=postgres password=secret dbname=pmtrack_db port=5432 sslmode=disable TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestParseDuration_Fallback(t *testing.T) {
	if d := parseDuration("not-a-duration"); d != 15*time.Minute {
		t.Fatalf("fallback duration: got %v", d)
	}
}
