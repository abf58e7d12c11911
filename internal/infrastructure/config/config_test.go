package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codexiq/review-api/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("expected default token TTL 1h, got %v", cfg.TokenTTL)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected default model: %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.MaxTokens != 1500 {
		t.Fatalf("unexpected default max tokens: %d", cfg.OpenAI.MaxTokens)
	}
	if cfg.RateLimit.ReviewsPerWindow != 10 || cfg.RateLimit.Window != time.Minute {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_FailsFastOnMissingSecrets(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing jwt secret", Config{OpenAI: OpenAIConfig{APIKey: "sk"}}},
		{"missing openai key", Config{JWTSecret: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			var de *domain.Error
			if !errors.As(err, &de) || de.Kind != domain.KindServerConfig {
				t.Fatalf("expected server config error, got %v", err)
			}
		})
	}
}
