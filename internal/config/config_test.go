package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	for _, key := range []string{"PORT", "CORS_ORIGINS", "CATALOG_REFRESH", "HOME_LAT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %s", cfg.Port)
	}
	if cfg.CatalogRefresh != 15*time.Minute {
		t.Fatalf("expected default refresh 15m, got %v", cfg.CatalogRefresh)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSOrigins)
	}
	if cfg.HomeLat < 22.41 || cfg.HomeLat > 22.43 {
		t.Fatalf("unexpected home latitude: %v", cfg.HomeLat)
	}
}

func TestLoadOverrides(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CATALOG_REFRESH", "1h")
	t.Setenv("CATALOG_URL", "https://feed.example/catalog.json")

	cfg, err := Load(logger)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.CatalogRefresh != time.Hour {
		t.Fatalf("expected refresh 1h, got %v", cfg.CatalogRefresh)
	}
	if cfg.CatalogURL != "https://feed.example/catalog.json" {
		t.Fatalf("unexpected catalog URL: %s", cfg.CatalogURL)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestParseEnvFile(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	content := strings.Join([]string{
		"# comment",
		"export TEST_ENVFILE_PORT=7070",
		`TEST_ENVFILE_DB="postgres://u:p@db:5432/app"`,
		"",
		"malformed line",
	}, "\n")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open env file: %v", err)
	}
	defer file.Close()

	t.Setenv("TEST_ENVFILE_PORT", "already-set")
	os.Unsetenv("TEST_ENVFILE_DB")
	t.Cleanup(func() { os.Unsetenv("TEST_ENVFILE_DB") })

	if err := parseEnvFile(logger, file); err != nil {
		t.Fatalf("parse env file: %v", err)
	}

	if got := os.Getenv("TEST_ENVFILE_PORT"); got != "already-set" {
		t.Fatalf("existing value should win, got %s", got)
	}
	if got := os.Getenv("TEST_ENVFILE_DB"); got != "postgres://u:p@db:5432/app" {
		t.Fatalf("unexpected value: %s", got)
	}
}

func TestTrimQuotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{`"quoted"`, "quoted"},
		{`'single'`, "single"},
		{`plain`, "plain"},
		{`"mismatched'`, `"mismatched'`},
		{`x`, `x`},
	}
	for _, tt := range tests {
		if got := trimQuotes(tt.in); got != tt.want {
			t.Errorf("trimQuotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
