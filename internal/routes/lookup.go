package routes

import (
	"context"
	"errors"
	"time"

	"github.com/steam-lens/profile-api/internal/insight"
	"github.com/steam-lens/profile-api/internal/metrics"
	"github.com/steam-lens/profile-api/internal/models"
	"github.com/steam-lens/profile-api/internal/steamid"
	apperrors "github.com/steam-lens/profile-api/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SteamAPI is the upstream surface the lookup handler depends on
type SteamAPI interface {
	Configured() bool
	GetPlayerSummary(ctx context.Context, steamID string) (*models.PlayerSummary, error)
	GetOwnedGames(ctx context.Context, steamID string) (*models.OwnedGames, error)
}

type LookupHandler struct {
	steam  SteamAPI
	logger *logrus.Logger
}

func NewLookupHandler(steam SteamAPI, logger *logrus.Logger) *LookupHandler {
	return &LookupHandler{
		steam:  steam,
		logger: logger,
	}
}

// Lookup resolves a friend code to a full profile payload
func (h *LookupHandler) Lookup(c *fiber.Ctx) error {
	lookupID := uuid.New().String()
	start := time.Now()

	var req models.LookupRequest
	if err := c.BodyParser(&req); err != nil {
		metrics.RecordLookup("bad_request")
		return h.errorResponse(c, apperrors.NewAppError(apperrors.CodeBadRequest, "请输入好友代码", err))
	}

	if req.FriendCode == "" {
		metrics.RecordLookup("bad_request")
		return h.errorResponse(c, apperrors.NewAppError(apperrors.CodeBadRequest, "请输入好友代码", nil))
	}

	// Convert friend code to SteamID64. Convert validates the digit-only
	// format itself, so malformed codes fail here with INVALID_FORMAT.
	steamID, err := steamid.Convert(req.FriendCode)
	if err != nil {
		metrics.RecordLookup("invalid_format")
		return h.errorResponse(c, apperrors.NewAppError(apperrors.CodeInvalidFormat, "好友代码格式不正确，请输入纯数字", err))
	}

	if !h.steam.Configured() {
		metrics.RecordLookup("misconfigured")
		h.logger.Error("Steam API key is not configured")
		return h.errorResponse(c, apperrors.NewAppError(apperrors.CodeMisconfigured, "请配置 Steam API Key", nil))
	}

	logEntry := h.logger.WithFields(logrus.Fields{
		"lookup_id": lookupID,
		"steam_id":  steamID,
	})

	// Fetch summary and library concurrently
	var (
		player *models.PlayerSummary
		owned  *models.OwnedGames
	)

	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		player, err = h.steam.GetPlayerSummary(ctx, steamID)
		return err
	})
	g.Go(func() error {
		var err error
		owned, err = h.steam.GetOwnedGames(ctx, steamID)
		return err
	})

	if err := g.Wait(); err != nil {
		metrics.RecordLookup("upstream_error")
		logEntry.WithError(err).Error("Steam API fetch failed")
		return h.errorResponse(c, h.upstreamError(err))
	}

	// Steam answers 200 with an empty players array for unknown accounts
	if player == nil {
		metrics.RecordLookup("not_found")
		logEntry.Info("No player found for friend code")
		return h.errorResponse(c, apperrors.NewAppError(apperrors.CodeNotFound, "未找到该用户的信息，请检查好友代码是否正确", nil))
	}

	response := insight.BuildProfileResponse(player, owned, time.Now().Unix())

	metrics.RecordLookup("success")
	if owned != nil {
		metrics.RecordLibrarySize(len(owned.Games))
	}

	logEntry.WithFields(logrus.Fields{
		"persona_name": player.PersonaName,
		"game_count":   response.Games.TotalCount,
		"latency_ms":   time.Since(start).Milliseconds(),
	}).Info("Profile lookup completed")

	return c.JSON(response)
}

// upstreamError normalizes errors coming out of the Steam client
func (h *LookupHandler) upstreamError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.CodeUpstreamTimeout:
			return apperrors.NewAppError(appErr.Code, "Steam 服务响应超时，请稍后再试", err)
		case apperrors.CodeUpstreamUnavailable:
			return apperrors.NewAppError(appErr.Code, "Steam 服务暂时不可用，请稍后再试", err)
		case apperrors.CodeMisconfigured:
			return apperrors.NewAppError(appErr.Code, "请配置 Steam API Key", err)
		default:
			return appErr
		}
	}
	return apperrors.NewAppError(apperrors.CodeInternalError, "查询失败，请稍后再试", err)
}

// errorResponse writes the standard error envelope for an AppError
func (h *LookupHandler) errorResponse(c *fiber.Ctx, appErr *apperrors.AppError) error {
	resp := appErr.ToErrorResponse(c.Get("X-Request-ID"))
	return c.Status(appErr.HTTPStatus()).JSON(resp)
}
