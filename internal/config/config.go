package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server        ServerConfig        `envconfig:"SERVER"`
	Steam         SteamConfig         `envconfig:"STEAM"`
	Redis         RedisConfig         `envconfig:"REDIS"`
	RateLimit     RateLimitConfig     `envconfig:"RATE_LIMIT"`
	Observability ObservabilityConfig `envconfig:"OBSERVABILITY"`
	CORS          CORSConfig          `envconfig:"CORS"`
	Log           LogConfig           `envconfig:"LOG"`
}

type ServerConfig struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	Environment  string        `envconfig:"ENVIRONMENT" default:"development"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"120s"`
}

type SteamConfig struct {
	// APIKey may be left empty; lookups then fail with MISCONFIGURED so the
	// operator sees a clear signal instead of a boot failure.
	APIKey  string        `envconfig:"API_KEY" default:""`
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.steampowered.com"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	Address      string        `envconfig:"ADDRESS" default:"localhost:6379"`
	Password     string        `envconfig:"PASSWORD" default:""`
	Database     int           `envconfig:"DATABASE" default:"0"`
	MaxRetries   int           `envconfig:"MAX_RETRIES" default:"3"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"100"`
	PoolTimeout  time.Duration `envconfig:"POOL_TIMEOUT" default:"4s"`
	MinIdleConns int           `envconfig:"MIN_IDLE_CONNS" default:"10"`
	TLSEnabled   bool          `envconfig:"TLS_ENABLED" default:"false"`
}

type RateLimitConfig struct {
	RPS         int           `envconfig:"RPS" default:"20"`
	Burst       int           `envconfig:"BURST" default:"40"`
	WindowSize  time.Duration `envconfig:"WINDOW_SIZE" default:"1s"`
	Enabled     bool          `envconfig:"ENABLED" default:"true"`
	ExemptPaths []string      `envconfig:"EXEMPT_PATHS" default:"/healthz,/readyz,/metrics"`
}

type ObservabilityConfig struct {
	MetricsPath    string  `envconfig:"METRICS_PATH" default:"/metrics"`
	OTLPEndpoint   string  `envconfig:"OTLP_ENDPOINT" default:"http://localhost:4318"`
	TracingEnabled bool    `envconfig:"TRACING_ENABLED" default:"false"`
	SampleRate     float64 `envconfig:"SAMPLE_RATE" default:"0.1"`
}

type CORSConfig struct {
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"*"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"json"`
}

func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Additional processing for slice fields that envconfig doesn't handle well
	if exemptPaths := os.Getenv("RATE_LIMIT_EXEMPT_PATHS"); exemptPaths != "" {
		cfg.RateLimit.ExemptPaths = strings.Split(exemptPaths, ",")
		for i := range cfg.RateLimit.ExemptPaths {
			cfg.RateLimit.ExemptPaths[i] = strings.TrimSpace(cfg.RateLimit.ExemptPaths[i])
		}
	}

	// Validate required fields
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	// Validate port
	if port, err := strconv.Atoi(cfg.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port: %s", cfg.Server.Port)
	}

	// Validate upstream timeout
	if cfg.Steam.Timeout <= 0 {
		return fmt.Errorf("invalid steam API timeout: %s", cfg.Steam.Timeout)
	}

	if !strings.HasPrefix(cfg.Steam.BaseURL, "http://") && !strings.HasPrefix(cfg.Steam.BaseURL, "https://") {
		return fmt.Errorf("invalid steam API base URL: %s", cfg.Steam.BaseURL)
	}

	// Validate sample rate
	if cfg.Observability.SampleRate < 0 || cfg.Observability.SampleRate > 1 {
		return fmt.Errorf("invalid tracing sample rate: %f", cfg.Observability.SampleRate)
	}

	return nil
}
