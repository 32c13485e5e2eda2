package config

import (
	"errors"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PLANNER_HTTP_ADDR", "PLANNER_CORS_ORIGINS", "PLANNER_DB_DSN", "PLANNER_PROVIDER",
		"GOOGLE_API_KEY", "GEMINI_API_KEY", "PLANNER_GEMINI_MODEL", "PLANNER_TEMPERATURE",
		"OPENAI_API_KEY", "PLANNER_OPENAI_MODEL", "PLANNER_OPENAI_URL", "PLANNER_PROVIDER_TIMEOUT",
		"PLANNER_PROVIDER_RPS", "PLANNER_PROVIDER_BURST",
		"PLANNER_API_BASE_URL", "PLANNER_CLIENT_TIMEOUT", "GOOGLE_MAPS_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "gm-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != DefaultHTTPAddr {
		t.Errorf("Addr = %q", cfg.HTTP.Addr)
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.Provider.Name != "gemini" || cfg.Provider.GeminiKey != "gm-key" {
		t.Errorf("provider = %+v", cfg.Provider)
	}
	if cfg.Provider.Timeout != DefaultProviderTimeout {
		t.Errorf("Timeout = %v", cfg.Provider.Timeout)
	}
	if cfg.Provider.Temperature != 0.4 {
		t.Errorf("Temperature = %v", cfg.Provider.Temperature)
	}
	if cfg.Provider.RPS != 0 || cfg.Provider.Burst != 1 {
		t.Errorf("expected unlimited provider rate, got rps=%v burst=%d", cfg.Provider.RPS, cfg.Provider.Burst)
	}
	if cfg.DB.DSN != "" {
		t.Errorf("expected journal disabled by default, got DSN %q", cfg.DB.DSN)
	}
}

func TestLoad_GoogleKeyWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider.GeminiKey != "google-key" {
		t.Errorf("GeminiKey = %q", cfg.Provider.GeminiKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLANNER_PROVIDER", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PLANNER_HTTP_ADDR", ":9090")
	t.Setenv("PLANNER_CORS_ORIGINS", "http://localhost:8501, ,http://example.com")
	t.Setenv("PLANNER_PROVIDER_TIMEOUT", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Provider.Name != "openai" {
		t.Errorf("Name = %q", cfg.Provider.Name)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.HTTP.Addr)
	}
	if len(cfg.HTTP.CORSOrigins) != 2 || cfg.HTTP.CORSOrigins[1] != "http://example.com" {
		t.Errorf("CORSOrigins = %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.Provider.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v", cfg.Provider.Timeout)
	}
}

func TestLoad_MissingCredential(t *testing.T) {
	clearEnv(t)
	if _, err := Load(); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}

	t.Setenv("PLANNER_PROVIDER", "openai")
	if _, err := Load(); !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential for openai, got %v", err)
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLANNER_PROVIDER", "mystery")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadClient(t *testing.T) {
	clearEnv(t)
	cc := LoadClient()
	if cc.BaseURL != DefaultAPIBaseURL || cc.Timeout != DefaultClientTimeout {
		t.Errorf("defaults = %+v", cc)
	}

	t.Setenv("PLANNER_API_BASE_URL", "https://planner.example.com/")
	t.Setenv("PLANNER_CLIENT_TIMEOUT", "not-a-duration")
	cc = LoadClient()
	if cc.BaseURL != "https://planner.example.com" {
		t.Errorf("BaseURL = %q", cc.BaseURL)
	}
	if cc.Timeout != DefaultClientTimeout {
		t.Errorf("Timeout = %v", cc.Timeout)
	}
}
