package middleware

import (
	"fmt"

	"github.com/steam-lens/profile-api/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Manager holds all middleware instances
type Manager struct {
	RateLimit   *RateLimitMiddleware
	ErrorLogger *ErrorLoggerMiddleware
	RedisClient *redis.Client
	Config      *config.Config
	Logger      *logrus.Logger
}

// NewManager creates a new middleware manager with all middleware initialized
func NewManager(cfg *config.Config, logger *logrus.Logger) (*Manager, error) {
	// Initialize Redis client
	redisClient, err := NewRedisClient(&cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis client: %w", err)
	}

	// Initialize rate limit middleware
	rateLimitMiddleware := NewRateLimitMiddleware(&cfg.RateLimit, redisClient, logger)

	// Initialize error logger middleware
	errorLoggerMiddleware := NewErrorLoggerMiddleware(logger)

	return &Manager{
		RateLimit:   rateLimitMiddleware,
		ErrorLogger: errorLoggerMiddleware,
		RedisClient: redisClient,
		Config:      cfg,
		Logger:      logger,
	}, nil
}

// Close closes all middleware resources
func (m *Manager) Close() error {
	if m.RedisClient != nil {
		return m.RedisClient.Close()
	}
	return nil
}
