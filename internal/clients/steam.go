package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/steam-lens/profile-api/internal/config"
	"github.com/steam-lens/profile-api/internal/metrics"
	"github.com/steam-lens/profile-api/internal/middleware"
	"github.com/steam-lens/profile-api/internal/models"
	apperrors "github.com/steam-lens/profile-api/pkg/errors"

	"github.com/sirupsen/logrus"
)

const (
	playerSummariesPath = "/ISteamUser/GetPlayerSummaries/v0002/"
	ownedGamesPath      = "/IPlayerService/GetOwnedGames/v0001/"
)

// SteamClient handles communication with the Steam Web API
type SteamClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
	breaker    *middleware.CircuitBreaker
}

// NewSteamClient creates a new Steam Web API client
func NewSteamClient(cfg *config.SteamConfig, logger *logrus.Logger) *SteamClient {
	// Create HTTP client with timeout
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &SteamClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		logger:     logger,
		breaker:    middleware.NewCircuitBreaker("steam-api", logger),
	}
}

// Configured reports whether an API key is set. Lookups without a key
// cannot succeed, so the handler rejects them before calling upstream.
func (c *SteamClient) Configured() bool {
	return c.apiKey != ""
}

// GetPlayerSummary fetches the player summary for a SteamID64.
// Returns (nil, nil) when the account does not exist: Steam answers 200
// with an empty players array rather than 404.
func (c *SteamClient) GetPlayerSummary(ctx context.Context, steamID string) (*models.PlayerSummary, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamids", steamID)

	body, err := c.get(ctx, "player_summaries", playerSummariesPath, params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Response struct {
			Players []models.PlayerSummary `json:"players"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperrors.NewAppError(apperrors.CodeUpstreamUnavailable, "failed to parse player summary response", err)
	}

	if len(envelope.Response.Players) == 0 {
		return nil, nil
	}
	return &envelope.Response.Players[0], nil
}

// GetOwnedGames fetches the owned games list for a SteamID64.
// Private libraries come back as an empty response object; those are
// returned as an empty OwnedGames, not an error.
func (c *SteamClient) GetOwnedGames(ctx context.Context, steamID string) (*models.OwnedGames, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("steamid", steamID)
	params.Set("include_appinfo", "1")
	params.Set("include_played_free_games", "1")
	params.Set("format", "json")

	body, err := c.get(ctx, "owned_games", ownedGamesPath, params)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Response models.OwnedGames `json:"response"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, apperrors.NewAppError(apperrors.CodeUpstreamUnavailable, "failed to parse owned games response", err)
	}

	return &envelope.Response, nil
}

// get executes a GET request through the circuit breaker and returns the
// response body on 2xx
func (c *SteamClient) get(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	var body []byte

	err := c.breaker.Execute(ctx, func() error {
		start := time.Now()

		requestURL := c.baseURL + path + "?" + params.Encode()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return apperrors.NewAppError(apperrors.CodeInternalError, "failed to create upstream request", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.RecordSteamCall(endpoint, 0, time.Since(start))
			return c.mapTransportError(endpoint, err)
		}
		defer resp.Body.Close()

		metrics.RecordSteamCall(endpoint, resp.StatusCode, time.Since(start))

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return apperrors.NewAppError(apperrors.CodeUpstreamUnavailable, "failed to read upstream response", err)
		}

		if resp.StatusCode != http.StatusOK {
			return c.mapStatusError(endpoint, resp.StatusCode)
		}

		body = respBody
		return nil
	})
	if err != nil {
		return nil, err
	}

	return body, nil
}

// mapTransportError translates connection-level failures into app errors
func (c *SteamClient) mapTransportError(endpoint string, err error) error {
	c.logger.WithError(err).WithField("endpoint", endpoint).Warn("Steam API request failed")

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewAppError(apperrors.CodeUpstreamTimeout, "Steam API request timed out", err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return apperrors.NewAppError(apperrors.CodeUpstreamTimeout, "Steam API request timed out", err)
	}

	return apperrors.NewAppError(apperrors.CodeUpstreamUnavailable, "Steam API is unreachable", err)
}

// mapStatusError translates non-200 upstream statuses into app errors
func (c *SteamClient) mapStatusError(endpoint string, statusCode int) error {
	c.logger.WithFields(logrus.Fields{
		"endpoint":    endpoint,
		"status_code": statusCode,
	}).Warn("Steam API returned error status")

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		// Steam answers 403 for missing or revoked API keys
		return apperrors.NewAppErrorf(apperrors.CodeMisconfigured, nil, "Steam API rejected the configured key (status %d)", statusCode)
	case statusCode == http.StatusTooManyRequests:
		return apperrors.NewAppErrorf(apperrors.CodeUpstreamUnavailable, nil, "Steam API is throttling requests (status %d)", statusCode)
	case statusCode >= 500:
		return apperrors.NewAppErrorf(apperrors.CodeUpstreamUnavailable, nil, "Steam API is unavailable (status %d)", statusCode)
	default:
		return apperrors.NewAppErrorf(apperrors.CodeUpstreamUnavailable, nil, "unexpected Steam API status %d", statusCode)
	}
}

// String implements fmt.Stringer for log output without leaking the key
func (c *SteamClient) String() string {
	return fmt.Sprintf("SteamClient(base=%s, configured=%t)", c.baseURL, c.Configured())
}
