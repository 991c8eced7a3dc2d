package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
server:
  port: 3000
database:
  uri: mongodb://localhost:27017/quizz-api
google:
  clientId: id
  clientSecret: secret
  redirectUrl: http://localhost:3000/auth/google/callback
jwt:
  secret: s3cret
frontend:
  url: http://localhost:5173
celebrity:
  cacheTtl: 1h
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "s3cret" {
		t.Errorf("jwt secret = %q", cfg.JWT.Secret)
	}
	if cfg.Celebrity.Endpoint == "" {
		t.Error("celebrity endpoint default not applied")
	}
	if got := cfg.CelebrityCacheTTL(); got != time.Hour {
		t.Errorf("cache ttl = %v, want 1h", got)
	}
}

func TestCelebrityCacheTTL_Default(t *testing.T) {
	cfg := &Config{}
	if got := cfg.CelebrityCacheTTL(); got != 24*time.Hour {
		t.Errorf("default ttl = %v, want 24h", got)
	}

	cfg.Celebrity.CacheTTL = "not-a-duration"
	if got := cfg.CelebrityCacheTTL(); got != 24*time.Hour {
		t.Errorf("ttl for junk input = %v, want 24h", got)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
