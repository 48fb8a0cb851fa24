package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/mood-weather/internal/api/http"
	"github.com/i474232898/mood-weather/internal/config"
	"github.com/i474232898/mood-weather/internal/scheduler"
	"github.com/i474232898/mood-weather/internal/session"
	"github.com/i474232898/mood-weather/internal/store"
	"github.com/i474232898/mood-weather/internal/weather/providers"
)

func main() {
	// Load configuration (also reads .env when present).
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls; a zero timeout leaves
	// the transport defaults in charge.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider, err := providers.New(httpClient, cfg.Provider)
	if err != nil {
		log.Fatalf("failed to build weather provider: %v", err)
	}
	log.Printf("INFO: using weather provider %s", provider.Name())

	// In-memory session store with configured retention.
	memStore := store.NewMemoryStore(cfg.SessionMaxCount, cfg.SessionMaxAge)

	service := session.NewService(memStore, provider)

	// Scheduler that periodically drops idle sessions.
	sched := scheduler.New(memStore, cfg.SweepInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "mood-weather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "mood-weather",
			"provider": provider.Name(),
			"sessions": memStore.Len(),
		})
	})

	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Printf("INFO: listening on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
