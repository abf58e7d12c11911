package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/codexiq/review-api/internal/core/domain"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`

	Mongo     MongoConfig
	Redis     RedisConfig
	OpenAI    OpenAIConfig
	GitHub    GitHubConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=codexiq"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type OpenAIConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY"`
	Model       string        `env:"OPENAI_MODEL,       default=gpt-3.5-turbo"`
	BaseURL     string        `env:"OPENAI_BASE_URL"`
	Timeout     time.Duration `env:"OPENAI_TIMEOUT,     default=120s"`
	MaxTokens   int           `env:"OPENAI_MAX_TOKENS,  default=1500"`
	Temperature float64       `env:"OPENAI_TEMPERATURE, default=0.1"`
}

type GitHubConfig struct {
	// Token is optional; without it raw fetches run unauthenticated at
	// GitHub's anonymous rate limits.
	Token   string        `env:"GITHUB_ACCESS_TOKEN"`
	Timeout time.Duration `env:"GITHUB_TIMEOUT, default=30s"`
}

type RateLimitConfig struct {
	ReviewsPerWindow int           `env:"REVIEW_RATE_LIMIT,  default=10"`
	Window           time.Duration `env:"REVIEW_RATE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on the secrets the service cannot run without. Called
// at startup so a misconfigured process never serves a request.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return domain.ServerConfigError("server configuration error: JWT secret missing")
	}
	if c.OpenAI.APIKey == "" {
		return domain.ServerConfigError("server configuration error: OpenAI API key missing")
	}
	return nil
}
