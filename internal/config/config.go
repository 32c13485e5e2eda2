// README: Config loader with env defaults for HTTP, provider, journal and client settings.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPAddr        = ":8000"
	DefaultAPIBaseURL      = "http://127.0.0.1:8000"
	DefaultProviderTimeout = 2 * time.Minute
	DefaultClientTimeout   = 120 * time.Second
)

type ProviderConfig struct {
	Name        string
	GeminiKey   string
	GeminiModel string
	Temperature float32
	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string
	Timeout     time.Duration
	RPS         float64
	Burst       int
}

type Config struct {
	HTTP struct {
		Addr        string
		CORSOrigins []string
	}
	DB struct {
		DSN string
	}
	Provider ProviderConfig
}

type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	MapsAPIKey string
}

var ErrMissingCredential = errors.New("missing provider credential")

// LoadDotEnv reads a .env file into the environment when one exists.
// Variables already set take precedence.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: ignoring .env: %v", err)
	}
}

// Load builds the server configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("PLANNER_HTTP_ADDR", DefaultHTTPAddr)
	cfg.HTTP.CORSOrigins = envList("PLANNER_CORS_ORIGINS", []string{"*"})
	cfg.DB.DSN = os.Getenv("PLANNER_DB_DSN")

	p := &cfg.Provider
	p.Name = strings.ToLower(envOrDefault("PLANNER_PROVIDER", "gemini"))
	p.GeminiKey = firstNonEmpty(os.Getenv("GOOGLE_API_KEY"), os.Getenv("GEMINI_API_KEY"))
	p.GeminiModel = envOrDefault("PLANNER_GEMINI_MODEL", "gemini-2.0-flash")
	p.Temperature = float32(envOrDefaultFloat("PLANNER_TEMPERATURE", 0.4))
	p.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	p.OpenAIModel = os.Getenv("PLANNER_OPENAI_MODEL")
	p.OpenAIURL = os.Getenv("PLANNER_OPENAI_URL")
	p.Timeout = envOrDefaultDuration("PLANNER_PROVIDER_TIMEOUT", DefaultProviderTimeout)
	p.RPS = envOrDefaultFloat("PLANNER_PROVIDER_RPS", 0)
	p.Burst = int(envOrDefaultFloat("PLANNER_PROVIDER_BURST", 1))

	switch p.Name {
	case "gemini":
		if p.GeminiKey == "" {
			return cfg, fmt.Errorf("%w: set GOOGLE_API_KEY or GEMINI_API_KEY", ErrMissingCredential)
		}
	case "openai":
		if p.OpenAIKey == "" {
			return cfg, fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingCredential)
		}
	default:
		return cfg, fmt.Errorf("unknown PLANNER_PROVIDER %q", p.Name)
	}
	return cfg, nil
}

// LoadClient builds the form client configuration from the environment.
func LoadClient() ClientConfig {
	return ClientConfig{
		BaseURL:    strings.TrimRight(envOrDefault("PLANNER_API_BASE_URL", DefaultAPIBaseURL), "/"),
		Timeout:    envOrDefaultDuration("PLANNER_CLIENT_TIMEOUT", DefaultClientTimeout),
		MapsAPIKey: os.Getenv("GOOGLE_MAPS_API_KEY"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
