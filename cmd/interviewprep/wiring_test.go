package main

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/interviewprep/internal/config"
)

func TestProviderDisplayName(t *testing.T) {
	tests := []struct {
		cfg  config.GenerationConfig
		want string
	}{
		{config.GenerationConfig{Provider: "openai", BaseURL: "https://api.groq.com/openai/v1"}, "Groq"},
		{config.GenerationConfig{Provider: "openai", BaseURL: "https://api.openai.com/v1"}, "OpenAI"},
		{config.GenerationConfig{Provider: "gemini"}, "Gemini"},
	}
	for _, tt := range tests {
		if got := providerDisplayName(tt.cfg); got != tt.want {
			t.Errorf("providerDisplayName(%+v) = %q, want %q", tt.cfg, got, tt.want)
		}
	}
}

func TestOpenStores_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "kb.db")

	s, err := openStores(context.Background(), config.DatabaseConfig{Driver: "sqlite", Path: path}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.kv.Close()

	if err := s.kv.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	got, err := s.docs.Query(context.Background(), "interview_prep", []float32{1, 0}, 3)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result for a fresh store, got %v (%v)", got, err)
	}
}

func TestOpenStores_UnknownDriver(t *testing.T) {
	if _, err := openStores(context.Background(), config.DatabaseConfig{Driver: "mongo"}, zap.NewNop()); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
