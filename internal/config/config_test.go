package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Run from a temp dir so no .env file interferes, and keep the log
	// directory it creates out of the repo.
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CompanyEmail != "divgaze@gmail.com" {
		t.Errorf("CompanyEmail = %q, want default operator inbox", cfg.CompanyEmail)
	}
	if cfg.ContactRateLimit != 5 {
		t.Errorf("ContactRateLimit = %d, want 5", cfg.ContactRateLimit)
	}
	if cfg.ContactRateWindow != 60*time.Second {
		t.Errorf("ContactRateWindow = %v, want 60s", cfg.ContactRateWindow)
	}
	if cfg.ContactTimezone != "Asia/Colombo" {
		t.Errorf("ContactTimezone = %q, want Asia/Colombo", cfg.ContactTimezone)
	}

	wantOrigins := []string{
		"https://divgaze.com",
		"https://www.divgaze.com",
		"http://localhost:3000",
		"http://localhost:5173",
	}
	if len(cfg.AllowedOrigins) != len(wantOrigins) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, wantOrigins)
	}
	for i, origin := range wantOrigins {
		if cfg.AllowedOrigins[i] != origin {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], origin)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("COMPANY_EMAIL", "ops@divgaze.com")
	t.Setenv("CONTACT_RATE_LIMIT", "3")
	t.Setenv("CONTACT_RATE_WINDOW", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.CompanyEmail != "ops@divgaze.com" {
		t.Errorf("CompanyEmail = %q, want override", cfg.CompanyEmail)
	}
	if cfg.ContactRateLimit != 3 {
		t.Errorf("ContactRateLimit = %d, want 3", cfg.ContactRateLimit)
	}
	if cfg.ContactRateWindow != 30*time.Second {
		t.Errorf("ContactRateWindow = %v, want 30s", cfg.ContactRateWindow)
	}
}

// chdir changes into dir for the duration of the test. It mirrors
// t.Chdir, which needs a newer testing package than this toolchain has.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) error = %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir(%q) error = %v", old, err)
		}
	})
}
