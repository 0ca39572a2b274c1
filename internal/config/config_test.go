package config

import (
	"strings"
	"testing"
)

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8000}}
	cfg.ApplyDefaults()
	cfg.Database.Driver = "chroma"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}

	expected := `database.driver must be "sqlite", "redis" or "valkey", got "chroma"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ValidDrivers(t *testing.T) {
	for _, driver := range []string{"sqlite", "redis", "valkey"} {
		t.Run("driver="+driver, func(t *testing.T) {
			cfg := Config{
				HTTP: HTTPConfig{Port: 8000},
				Database: DatabaseConfig{
					Driver: driver,
					Addrs:  []string{"localhost:6379"},
				},
			}
			cfg.ApplyDefaults()

			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for driver %q: %v", driver, err)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 0}}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingRedisAddrs(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8000},
		Database: DatabaseConfig{Driver: "redis"},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing redis addrs")
	}
}

func TestValidate_UnknownGenerationProvider(t *testing.T) {
	cfg := Config{
		HTTP:       HTTPConfig{Port: 8000},
		Generation: GenerationConfig{Provider: "ollama"},
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown generation provider")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected Driver='sqlite', got %q", cfg.Database.Driver)
	}
	if cfg.Database.Path != "./data/interview_prep.db" {
		t.Errorf("expected default sqlite path, got %q", cfg.Database.Path)
	}
	if cfg.Generation.BaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("expected Groq base URL, got %q", cfg.Generation.BaseURL)
	}
	if cfg.Generation.Model != "llama-3.1-8b-instant" {
		t.Errorf("expected llama-3.1-8b-instant, got %q", cfg.Generation.Model)
	}
	if cfg.Generation.Temperature != 0.7 {
		t.Errorf("expected Temperature=0.7, got %g", cfg.Generation.Temperature)
	}
	if cfg.Generation.MaxTokens != 2048 {
		t.Errorf("expected MaxTokens=2048, got %d", cfg.Generation.MaxTokens)
	}
	if cfg.Retrieval.Collection != "interview_prep" {
		t.Errorf("expected Collection='interview_prep', got %q", cfg.Retrieval.Collection)
	}
	if cfg.Retrieval.TopK != 3 {
		t.Errorf("expected TopK=3, got %d", cfg.Retrieval.TopK)
	}
	if cfg.Scraper.TimeoutSec != 10 {
		t.Errorf("expected scraper TimeoutSec=10, got %d", cfg.Scraper.TimeoutSec)
	}
	if cfg.Scraper.Selector != "div.BNeawe.s3v9rd.AP7Wnd" {
		t.Errorf("unexpected selector %q", cfg.Scraper.Selector)
	}
}

func TestApplyDefaults_GeminiModel(t *testing.T) {
	cfg := Config{Generation: GenerationConfig{Provider: "gemini"}}
	cfg.ApplyDefaults()

	if cfg.Generation.Model != "gemini-2.5-flash" {
		t.Errorf("expected gemini default model, got %q", cfg.Generation.Model)
	}
	if cfg.Generation.BaseURL != "" {
		t.Errorf("gemini must not inherit the Groq base URL, got %q", cfg.Generation.BaseURL)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:       HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 120, ShutdownSec: 5},
		Database:   DatabaseConfig{Driver: "valkey", ReadinessTimeout: 15},
		Generation: GenerationConfig{Model: "llama-3.3-70b-versatile", MaxTokens: 4096},
		Retrieval:  RetrievalConfig{Collection: "custom", TopK: 5},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.WriteTimeoutSec != 120 {
		t.Errorf("expected WriteTimeoutSec=120, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Database.Driver != "valkey" {
		t.Errorf("expected Driver='valkey', got %q", cfg.Database.Driver)
	}
	if cfg.Generation.Model != "llama-3.3-70b-versatile" {
		t.Errorf("expected model to be kept, got %q", cfg.Generation.Model)
	}
	if cfg.Retrieval.TopK != 5 {
		t.Errorf("expected TopK=5, got %d", cfg.Retrieval.TopK)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("INTERVIEWPREP_TEST_KEY", "secret")

	got := string(expandEnvVars([]byte("a: ${INTERVIEWPREP_TEST_KEY}\nb: ${INTERVIEWPREP_UNSET:-fallback}\nc: ${INTERVIEWPREP_UNSET}")))
	want := "a: secret\nb: fallback\nc: "
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestParse(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")

	yml := `
http:
  port: 8000
generation:
  api_key: ${GROQ_API_KEY}
scraper:
  enabled: true
`
	cfg, err := Parse([]byte(yml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Generation.APIKey != "gsk-test" {
		t.Errorf("expected expanded api key, got %q", cfg.Generation.APIKey)
	}
	if !cfg.Scraper.Enabled {
		t.Error("expected scraper enabled")
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("http:\n  port: 0\n"))
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("expected invalid config error, got %v", err)
	}
}
