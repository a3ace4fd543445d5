package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envKeys = []string{
	"PRODUCT_PROVIDER",
	"YAHOO_APP_ID",
	"YAHOO_BASE_URL",
	"YAHOO_RESULTS",
	"OFF_BASE_URL",
	"HTTP_TIMEOUT",
	"PORT",
	"ALLOWED_ORIGINS",
}

// clearEnv はテスト中だけ関連する環境変数を未設定にします
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unsetenv %s: %v", k, err)
		}
	}
}

func TestParse_defaults(t *testing.T) {
	clearEnv(t)

	cfg, rest, err := Parse([]string{"--yahoo-app-id", "key", "4901777018686"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Provider != ProviderYahoo {
		t.Errorf("Provider got %q, want %q", cfg.Provider, ProviderYahoo)
	}
	if cfg.YahooAppID != "key" {
		t.Errorf("YahooAppID got %q", cfg.YahooAppID)
	}
	if cfg.YahooBaseURL != "https://shopping.yahooapis.jp" {
		t.Errorf("YahooBaseURL got %q", cfg.YahooBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout got %s, want 30s", cfg.HTTPTimeout)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port got %q, want 8080", cfg.Port)
	}
	if len(rest) != 1 || rest[0] != "4901777018686" {
		t.Errorf("rest got %#v", rest)
	}
}

func TestParse_readsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("YAHOO_APP_ID", "env-key")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, _, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.YahooAppID != "env-key" {
		t.Errorf("YahooAppID got %q", cfg.YahooAppID)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout got %s", cfg.HTTPTimeout)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port got %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("AllowedOrigins got %#v", cfg.AllowedOrigins)
	}
}

func TestParse_yahooRequiresAppID(t *testing.T) {
	clearEnv(t)

	if _, _, err := Parse(nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParse_openFoodFactsNeedsNoAppID(t *testing.T) {
	clearEnv(t)

	cfg, _, err := Parse([]string{"--provider", "openfoodfacts"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderOpenFoodFacts {
		t.Fatalf("Provider got %q", cfg.Provider)
	}
}

func TestParse_rejectsUnknownProvider(t *testing.T) {
	clearEnv(t)

	if _, _, err := Parse([]string{"--provider", "amazon"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParse_help(t *testing.T) {
	clearEnv(t)

	_, _, err := Parse([]string{"--help"})
	if !IsHelp(err) {
		t.Fatalf("expected help error, got %v", err)
	}
}

func TestLoad_readsDotEnvWithoutOverriding(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7070")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("YAHOO_APP_ID=dotenv-key\nPORT=6060\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.YahooAppID != "dotenv-key" {
		t.Errorf("YahooAppID got %q", cfg.YahooAppID)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port got %q, want existing env to win", cfg.Port)
	}
}

func TestLoad_missingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)

	_, _, err := Load([]string{"--provider", "openfoodfacts"}, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_extraOptionGroup(t *testing.T) {
	clearEnv(t)

	var opts struct {
		Once bool `long:"once"`
	}

	_, rest, err := Parse([]string{"--provider", "openfoodfacts", "--once", "123"}, &opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !opts.Once {
		t.Fatalf("Once should be set")
	}
	if len(rest) != 1 || rest[0] != "123" {
		t.Fatalf("rest got %#v", rest)
	}
}
