package routes

import (
	"time"

	"github.com/steam-lens/profile-api/internal/clients"
	"github.com/steam-lens/profile-api/internal/config"
	"github.com/steam-lens/profile-api/internal/metrics"
	"github.com/steam-lens/profile-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Setup configures all API routes
func Setup(app *fiber.App, cfg *config.Config, logger *logrus.Logger, middlewareManager *middleware.Manager, steamClient *clients.SteamClient) {
	// Create route handlers
	lookupHandler := NewLookupHandler(steamClient, logger)

	// Health check endpoints
	app.Get("/healthz", healthCheck)
	app.Get("/readyz", readinessCheck(middlewareManager))
	app.Get("/version", versionHandler)

	// Metrics endpoint
	app.Get(cfg.Observability.MetricsPath, metrics.PrometheusHandler())

	// API routes with middleware
	api := app.Group("/api/v1")

	// Apply global middleware to API routes
	api.Use(metrics.HTTPMetricsMiddleware())
	api.Use(middlewareManager.RateLimit.Handle())
	api.Use(middlewareManager.ErrorLogger.Handle())

	// Profile lookup
	api.Post("/lookup", lookupHandler.Lookup)

	// 404 handler
	app.Use(notFoundHandler)
}

// healthCheck returns the health status of the service
func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "profile-api",
	})
}

// readinessCheck checks if the service is ready to accept traffic
func readinessCheck(middlewareManager *middleware.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Check Redis connectivity
		redisHealthCheck := middleware.RedisHealthCheck(middlewareManager.RedisClient, middlewareManager.Logger)
		if err := redisHealthCheck(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":    "not ready",
				"reason":    "redis unavailable",
				"error":     err.Error(),
				"timestamp": time.Now().UTC(),
			})
		}

		return c.JSON(fiber.Map{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "profile-api",
		})
	}
}

// versionHandler returns version information
func versionHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "profile-api",
		"version": getVersion(),
		"commit":  getCommit(),
		"built":   getBuildTime(),
	})
}

// notFoundHandler handles 404 errors
func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": fiber.Map{
			"code":     "NOT_FOUND",
			"message":  "The requested resource was not found",
			"path":     c.Path(),
			"trace_id": c.Get("X-Request-ID"),
		},
	})
}

// Helper functions for version info
func getVersion() string {
	// This would typically be set during build
	return "dev"
}

func getCommit() string {
	// This would typically be set during build
	return "unknown"
}

func getBuildTime() string {
	// This would typically be set during build
	return "unknown"
}
