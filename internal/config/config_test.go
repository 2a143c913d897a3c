package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BANKIST_LOGOUT_AFTER", "")
		t.Setenv("BANKIST_TICK_INTERVAL", "")
		t.Setenv("BANKIST_LOAN_DELAY", "")
		t.Setenv("PORT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.LogoutAfter != 5*time.Minute {
			t.Errorf("expected 5m logout, got %v", cfg.LogoutAfter)
		}
		if cfg.LoanDelay != 3*time.Second {
			t.Errorf("expected 3s loan delay, got %v", cfg.LoanDelay)
		}
		if got := cfg.CountdownTicks(); got != 300 {
			t.Errorf("expected 300 countdown ticks, got %d", got)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("BANKIST_LOGOUT_AFTER", "2m")
		t.Setenv("BANKIST_TICK_INTERVAL", "500ms")
		t.Setenv("BANKIST_LOAN_DELAY", "10s")
		t.Setenv("BANKIST_SEED_FILE", "/tmp/seed.toml")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := cfg.CountdownTicks(); got != 240 {
			t.Errorf("expected 240 countdown ticks, got %d", got)
		}
		if cfg.LoanDelay != 10*time.Second {
			t.Errorf("expected 10s loan delay, got %v", cfg.LoanDelay)
		}
		if cfg.SeedFile != "/tmp/seed.toml" {
			t.Errorf("expected seed file override, got %s", cfg.SeedFile)
		}
	})

	t.Run("invalid_duration", func(t *testing.T) {
		t.Setenv("BANKIST_LOAN_DELAY", "soon")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for invalid duration")
		}
	})

	t.Run("negative_duration", func(t *testing.T) {
		t.Setenv("BANKIST_LOAN_DELAY", "-3s")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for negative duration")
		}
	})

	t.Run("countdown_shorter_than_tick", func(t *testing.T) {
		t.Setenv("BANKIST_LOGOUT_AFTER", "500ms")
		t.Setenv("BANKIST_TICK_INTERVAL", "1s")

		if _, err := Load(); err == nil {
			t.Fatal("expected error when countdown is shorter than one tick")
		}
	})
}
