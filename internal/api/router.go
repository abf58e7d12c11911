package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codexiq/review-api/internal/api/handler"
	"github.com/codexiq/review-api/internal/api/middleware"
	"github.com/codexiq/review-api/internal/core/service"
	"github.com/codexiq/review-api/internal/infrastructure/config"
	mongoauth "github.com/codexiq/review-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/codexiq/review-api/internal/infrastructure/db/redis"
	"github.com/codexiq/review-api/internal/infrastructure/github"
	"github.com/codexiq/review-api/internal/infrastructure/http/handlers"
	"github.com/codexiq/review-api/internal/infrastructure/openai"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("codexiq"))

	// --- Dependencies ---
	authRepo := mongoauth.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	authHandler := handler.NewAuthHandler(authService)

	contentHost := github.NewClient(cfg.GitHub.Token, cfg.GitHub.Timeout, log)
	resolver := service.NewContentResolver(contentHost, log)
	provider := openai.NewClient(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.OpenAI.Timeout,
		Logger:  log,
	})
	reviewService := service.NewReviewService(resolver, provider, service.ReviewOptions{
		MaxTokens:   cfg.OpenAI.MaxTokens,
		Temperature: &cfg.OpenAI.Temperature,
	}, log)
	reviewHandler := handler.NewReviewHandler(reviewService)

	limiter := redisinfra.NewRateLimiter(rdb, cfg.RateLimit.ReviewsPerWindow, cfg.RateLimit.Window)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected review routes ---
	review := e.Group("/review", middleware.Auth(cfg.JWTSecret, log), middleware.RateLimit(limiter, log))
	review.POST("/code", reviewHandler.ReviewCode)
	review.POST("/remote", reviewHandler.ReviewRemote)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
