package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trendpilot/api/internal/assets"
	"github.com/trendpilot/api/internal/client"
	"github.com/trendpilot/api/internal/config"
	"github.com/trendpilot/api/internal/handler"
	"github.com/trendpilot/api/internal/middleware"
	"github.com/trendpilot/api/internal/service"
	"github.com/trendpilot/api/internal/trends"
	"github.com/trendpilot/api/pkg/response"
)

func main() {
	// Load .env before config binds (safe if absent)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	setupLogging(cfg)

	// Initialize validator
	validate := validator.New()

	// Initialize external clients
	openaiClient := client.NewOpenAIClient(&cfg.OpenAI)
	captionSpace := client.NewSpaceClient(cfg.Spaces.CaptionURL)
	paraphraseSpace := client.NewSpaceClient(cfg.Spaces.ParaphraseURL)
	trendsClient := client.NewTrendsClient(cfg.Trends.BaseURL)

	if !openaiClient.IsConfigured() {
		log.Info().Msg("OpenAI not configured, captions fall back to the template engine")
	}

	// Asset catalog and trends cache
	matcher := assets.NewMatcher(assets.Catalog)
	trendsCache := trends.NewCache(trendsClient)

	// Initialize services
	contentService := service.NewContentService(openaiClient, captionSpace, paraphraseSpace, matcher)
	imageService := service.NewImageService(openaiClient)
	trendsService := service.NewTrendsService(trendsCache, &cfg.Trends)

	// Initialize handlers
	contentHandler := handler.NewContentHandler(contentService, validate)
	imageHandler := handler.NewImageHandler(imageService, validate)
	trendsHandler := handler.NewTrendsHandler(trendsService)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Base URL - service banner
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "trendpilot-api",
			"endpoints": []string{
				"/health",
				"/api/trends?platform=instagram",
				"POST /api/content/generate",
				"POST /api/content/generate_image",
			},
		})
	})

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "trendpilot-api",
			"services": fiber.Map{
				"openai":           openaiClient.IsConfigured(),
				"caption_space":    captionSpace.IsConfigured(),
				"paraphrase_space": paraphraseSpace.IsConfigured(),
				"trends":           trendsClient.IsConfigured(),
			},
		})
	})

	// API routes
	api := app.Group("/api", middleware.NewRateLimiter(cfg.RateLimit.PerMinute))
	api.Post("/content/generate", contentHandler.Generate)
	api.Post("/content/generate_image", imageHandler.Generate)
	api.Get("/trends", trendsHandler.Trending)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	log.Info().Str("addr", addr).Msg("Server starting")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Server.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(cfg.Server.Env, "development") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return response.Error(c, code, response.CodeServiceError, message, nil)
}
