package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/steam-lens/profile-api/internal/models"
	apperrors "github.com/steam-lens/profile-api/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSteam struct {
	configured bool
	player     *models.PlayerSummary
	owned      *models.OwnedGames
	summaryErr error
	gamesErr   error
	gotSteamID string
}

func (s *stubSteam) Configured() bool { return s.configured }

func (s *stubSteam) GetPlayerSummary(ctx context.Context, steamID string) (*models.PlayerSummary, error) {
	s.gotSteamID = steamID
	if s.summaryErr != nil {
		return nil, s.summaryErr
	}
	return s.player, nil
}

func (s *stubSteam) GetOwnedGames(ctx context.Context, steamID string) (*models.OwnedGames, error) {
	if s.gamesErr != nil {
		return nil, s.gamesErr
	}
	return s.owned, nil
}

func newLookupApp(stub *stubSteam) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	handler := NewLookupHandler(stub, logger)
	app.Post("/api/v1/lookup", handler.Lookup)
	return app
}

func doLookup(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lookup", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) apperrors.ErrorResponse {
	t.Helper()

	var errResp apperrors.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	return errResp
}

func TestLookup_Success(t *testing.T) {
	stub := &stubSteam{
		configured: true,
		player: &models.PlayerSummary{
			SteamID:      "76561197960265729",
			PersonaName:  "gaben",
			PersonaState: 1,
			TimeCreated:  1378944000,
		},
		owned: &models.OwnedGames{
			GameCount: 1,
			Games: []models.OwnedGame{
				{AppID: 570, Name: "Dota 2", PlaytimeForever: 6000},
			},
		},
	}
	app := newLookupApp(stub)

	resp := doLookup(t, app, `{"friendCode":"1"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Friend code 1 shifts by the SteamID64 base offset
	assert.Equal(t, "76561197960265729", stub.gotSteamID)

	var profile models.ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))

	assert.True(t, profile.Success)
	assert.Equal(t, "76561197960265729", profile.Player.SteamID)
	assert.Equal(t, "gaben", profile.Player.PersonaName)
	assert.Equal(t, 1, profile.Games.TotalCount)
	assert.Equal(t, 6000, profile.Games.TotalPlaytime)
	require.Len(t, profile.Games.List, 1)
	assert.Equal(t, "Dota 2", profile.Games.List[0].Name)
}

func TestLookup_PassesThroughFullSteamID(t *testing.T) {
	stub := &stubSteam{
		configured: true,
		player:     &models.PlayerSummary{SteamID: "76561198083722517"},
		owned:      &models.OwnedGames{},
	}
	app := newLookupApp(stub)

	// A full 17-digit SteamID64 above the base is used as-is
	resp := doLookup(t, app, `{"friendCode":"76561198083722517"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "76561198083722517", stub.gotSteamID)
}

func TestLookup_EmptyCode(t *testing.T) {
	app := newLookupApp(&stubSteam{configured: true})

	resp := doLookup(t, app, `{"friendCode":""}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errResp := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeBadRequest, errResp.Error.Code)
	assert.Equal(t, "请输入好友代码", errResp.Error.Message)
}

func TestLookup_MalformedBody(t *testing.T) {
	app := newLookupApp(&stubSteam{configured: true})

	resp := doLookup(t, app, `{not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errResp := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeBadRequest, errResp.Error.Code)
}

func TestLookup_InvalidFormat(t *testing.T) {
	app := newLookupApp(&stubSteam{configured: true})

	for _, code := range []string{"12a34", "-5", "12.5", " 123"} {
		resp := doLookup(t, app, `{"friendCode":"`+code+`"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "code %q", code)

		errResp := decodeError(t, resp)
		assert.Equal(t, apperrors.CodeInvalidFormat, errResp.Error.Code, "code %q", code)
		assert.Equal(t, "好友代码格式不正确，请输入纯数字", errResp.Error.Message)
	}
}

func TestLookup_MissingAPIKey(t *testing.T) {
	app := newLookupApp(&stubSteam{configured: false})

	resp := doLookup(t, app, `{"friendCode":"1"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	errResp := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeMisconfigured, errResp.Error.Code)
	assert.Equal(t, "请配置 Steam API Key", errResp.Error.Message)
}

func TestLookup_PlayerNotFound(t *testing.T) {
	stub := &stubSteam{
		configured: true,
		player:     nil,
		owned:      &models.OwnedGames{},
	}
	app := newLookupApp(stub)

	resp := doLookup(t, app, `{"friendCode":"999999999"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	errResp := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeNotFound, errResp.Error.Code)
	assert.Equal(t, "未找到该用户的信息，请检查好友代码是否正确", errResp.Error.Message)
}

func TestLookup_UpstreamTimeout(t *testing.T) {
	stub := &stubSteam{
		configured: true,
		summaryErr: apperrors.NewAppError(apperrors.CodeUpstreamTimeout, "Steam API request timed out", nil),
	}
	app := newLookupApp(stub)

	resp := doLookup(t, app, `{"friendCode":"1"}`)
	require.Equal(t, http.StatusGatewayTimeout, resp.StatusCode)

	errResp := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeUpstreamTimeout, errResp.Error.Code)
	assert.Equal(t, "Steam 服务响应超时，请稍后再试", errResp.Error.Message)
}

func TestLookup_UpstreamUnavailable(t *testing.T) {
	stub := &stubSteam{
		configured: true,
		gamesErr:   apperrors.NewAppError(apperrors.CodeUpstreamUnavailable, "Steam API is unreachable", nil),
	}
	app := newLookupApp(stub)

	resp := doLookup(t, app, `{"friendCode":"1"}`)
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	errResp := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeUpstreamUnavailable, errResp.Error.Code)
	assert.Equal(t, "Steam 服务暂时不可用，请稍后再试", errResp.Error.Message)
}

func TestLookup_UnclassifiedUpstreamError(t *testing.T) {
	stub := &stubSteam{
		configured: true,
		summaryErr: assert.AnError,
	}
	app := newLookupApp(stub)

	resp := doLookup(t, app, `{"friendCode":"1"}`)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	errResp := decodeError(t, resp)
	assert.Equal(t, apperrors.CodeInternalError, errResp.Error.Code)
}
