// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func setRequiredEnv() {
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("PUBLIC_BASE_URL", "https://ratings.example.com")
	os.Setenv("OAUTH_CLIENT_ID", "client-id")
	os.Setenv("OAUTH_CLIENT_SECRET", "client-secret")
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	setRequiredEnv()
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.SessionTTL != 10*time.Minute {
		t.Errorf("expected default TTL 10m, got %s", cfg.SessionTTL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	setRequiredEnv()
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-session-ttl", "5m"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Errorf("expected TTL 5m, got %s", cfg.SessionTTL)
	}
}

func TestParseFlags_MissingSecrets(t *testing.T) {
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("PUBLIC_BASE_URL", "https://ratings.example.com")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error when OAuth credentials are missing")
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	setRequiredEnv()
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}
