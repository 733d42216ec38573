package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "prod" {
		t.Fatalf("expected App.Env to be prod, got %q", cfg.App.Env)
	}

	if cfg.Storefront.CatalogBaseURL != "https://shop.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Storefront.CatalogBaseURL)
	}

	if cfg.Storefront.CartBaseURL != "https://shop.example.com" {
		t.Fatalf("expected cart base to default to catalog base, got %q", cfg.Storefront.CartBaseURL)
	}

	if got := cfg.Storefront.RequestTimeout; got != 10*time.Second {
		t.Fatalf("expected default request timeout 10s, got %v", got)
	}

	if cfg.Promo.BonusHandle != DefaultBonusHandle {
		t.Fatalf("expected bonus handle fallback %q, got %q", DefaultBonusHandle, cfg.Promo.BonusHandle)
	}

	if len(cfg.Promo.MatchTerms) != 2 || cfg.Promo.MatchTerms[0] != "black" || cfg.Promo.MatchTerms[1] != "medium" {
		t.Fatalf("unexpected default match terms %v", cfg.Promo.MatchTerms)
	}

	if cfg.Redis.Enabled() {
		t.Fatal("redis should be disabled without url or address")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvCatalogBaseURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvCatalogBaseURL, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsNonHTTPBaseURL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCatalogBaseURL, "ftp://shop.example.com")

	if _, err := Load(); err == nil {
		t.Fatal("expected non-http scheme to be rejected")
	}
}

func TestLoad_ConfiguredBonusHandleWins(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvBonusHandle, "limited-sticker-pack")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Promo.BonusHandle != "limited-sticker-pack" {
		t.Fatalf("unexpected bonus handle %q", cfg.Promo.BonusHandle)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "prod")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvCatalogBaseURL, "https://shop.example.com/")
	os.Unsetenv(EnvCartBaseURL)
	os.Unsetenv(EnvBonusHandle)
	os.Unsetenv(EnvRedisURL)
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
}
