package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/daily-grace-api/internal/config"
	"github.com/daily-grace-api/internal/devotional"
	"github.com/daily-grace-api/internal/gemini"
	"github.com/daily-grace-api/internal/handlers"
	"github.com/daily-grace-api/internal/logger"
	"github.com/daily-grace-api/internal/middleware"
	"github.com/daily-grace-api/internal/prompt"
	"github.com/daily-grace-api/internal/session"
	"github.com/daily-grace-api/web"
)

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	// Get configuration
	cfg := config.GetConfig()

	logg, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	sessions := session.NewManager(cfg.SessionLifetime)
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSMiddleware())
	e.Use(middleware.SessionMiddleware(sessions))

	// Create the content generator. Without an API key the server still
	// runs: every generation call fails and the fallback content is served.
	ctx := context.Background()
	var generator gemini.Generator
	client, err := gemini.NewClient(ctx, gemini.Config{
		APIKey:            cfg.GeminiAPIKey,
		Model:             cfg.GeminiModel,
		Temperature:       cfg.GeminiTemperature,
		SystemInstruction: prompt.SystemInstruction(),
	})
	switch {
	case err == nil:
		logg.Info("Gemini client ready", logger.String("model", cfg.GeminiModel))
		generator = client
	case errors.Is(err, gemini.ErrNotConfigured):
		logg.Warn("GEMINI_API_KEY not set, serving fallback content only")
		generator = gemini.Disabled{}
	default:
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	// Create services and stores
	preferences := session.NewPreferenceStore(sessions)
	devotionalSvc := devotional.NewService(generator, logg)

	// Create API group with prefix
	api := e.Group(cfg.APIPrefix)

	// Register handlers
	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(api)

	devotionalHandler := handlers.NewDevotionalHandler(devotionalSvc, preferences)
	devotionalHandler.RegisterRoutes(api)

	preferencesHandler := handlers.NewPreferencesHandler(preferences)
	preferencesHandler.RegisterRoutes(api)

	// Embedded single-page UI
	e.FileFS("/", "static/index.html", web.StaticFS)
	e.StaticFS("/static", echo.MustSubFS(web.StaticFS, "static"))

	// API info
	api.GET("", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"name":    cfg.APITitle,
			"version": cfg.APIVersion,
			"status":  "running",
		})
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		logg.Info("Starting server",
			logger.String("name", cfg.APITitle),
			logger.String("version", cfg.APIVersion),
			logger.String("addr", addr))
		if err := e.Start(addr); err != nil {
			logg.Info("Server stopped", logger.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error("Error shutting down server", logger.Error(err))
	}

	logg.Info("Server stopped")
}
