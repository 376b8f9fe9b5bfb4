package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Port)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("Expected default env development, got %s", cfg.AppEnv)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	os.Setenv("BACKOFFICE_PORT", "9090")
	os.Setenv("BACKOFFICE_ROLES_ADMINS", "Boss@Havahills.ph, staff@havahills.ph")
	defer os.Unsetenv("BACKOFFICE_PORT")
	defer os.Unsetenv("BACKOFFICE_ROLES_ADMINS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Port)
	}
	if len(cfg.AdminEmails) != 2 {
		t.Fatalf("Expected 2 admin emails, got %d", len(cfg.AdminEmails))
	}

	// role checks are case-insensitive
	if !cfg.IsAdmin("boss@havahills.ph") {
		t.Error("Expected boss@havahills.ph to be admin")
	}
	if cfg.IsAdmin("nobody@havahills.ph") {
		t.Error("Did not expect nobody@havahills.ph to be admin")
	}
}
