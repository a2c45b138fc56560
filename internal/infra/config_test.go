package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("LOCALE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("AppEnv mismatch: got %q want %q", cfg.AppEnv, "development")
	}
	if cfg.DataDir != "./data" {
		t.Fatalf("DataDir mismatch: got %q want %q", cfg.DataDir, "./data")
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("Locale mismatch: got %q want %q", cfg.Locale, "en-US")
	}
	if cfg.ProcessingDelay != 1200*time.Millisecond {
		t.Fatalf("ProcessingDelay mismatch: got %v", cfg.ProcessingDelay)
	}
}

func TestLoadConfigHonorsExplicitDelays(t *testing.T) {
	t.Setenv("CHECKOUT_PROCESS_DELAY_MS", "50")
	t.Setenv("CHECKOUT_REDIRECT_DELAY_MS", "75")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ProcessingDelay != 50*time.Millisecond {
		t.Fatalf("ProcessingDelay mismatch: got %v want 50ms", cfg.ProcessingDelay)
	}
	if cfg.RedirectDelay != 75*time.Millisecond {
		t.Fatalf("RedirectDelay mismatch: got %v want 75ms", cfg.RedirectDelay)
	}
}

func TestLoadConfigIgnoresMalformedInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.RateLimitPerMin != 120 {
		t.Fatalf("RateLimitPerMin mismatch: got %d want 120", cfg.RateLimitPerMin)
	}
}
