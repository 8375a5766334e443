package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steam-lens/profile-api/internal/models"
)

func samplePlayer() *models.PlayerSummary {
	return &models.PlayerSummary{
		SteamID:      "76561197960265729",
		PersonaName:  "gaben",
		ProfileURL:   "https://steamcommunity.com/id/gaben/",
		Avatar:       "small.jpg",
		AvatarMedium: "medium.jpg",
		AvatarFull:   "full.jpg",
		PersonaState: 1,
		TimeCreated:  1063324800, // 2003-09-12
	}
}

func sampleGames() *models.OwnedGames {
	return &models.OwnedGames{
		GameCount: 3,
		Games: []models.OwnedGame{
			{AppID: 570, Name: "Dota 2", PlaytimeForever: 6000, ImgIconURL: "icon570"},
			{AppID: 730, Name: "Counter-Strike 2", PlaytimeForever: 3000, ImgIconURL: "icon730", ImgLogoURL: "logo730"},
			{AppID: 440, Name: "Team Fortress 2", PlaytimeForever: 1000, ImgIconURL: "icon440"},
		},
	}
}

func TestBuildProfileResponse_PlayerBlock(t *testing.T) {
	now := int64(1700000000)
	resp := BuildProfileResponse(samplePlayer(), sampleGames(), now)

	assert.True(t, resp.Success)
	assert.Equal(t, "76561197960265729", resp.Player.SteamID)
	assert.Equal(t, "gaben", resp.Player.PersonaName)
	assert.Equal(t, "full.jpg", resp.Player.Avatar)
	assert.Equal(t, "medium.jpg", resp.Player.AvatarMedium)
	assert.Equal(t, "small.jpg", resp.Player.AvatarSmall)
	assert.Equal(t, "在线", resp.Player.PersonaStateText)
	assert.Equal(t, "online", resp.Player.PersonaStateColor)

	assert.Equal(t, "2003-09-12", resp.Account.Date)
	assert.Equal(t, int64(1063324800), resp.Account.Timestamp)
	assert.Positive(t, resp.Account.Age)
}

func TestBuildProfileResponse_GamesBlock(t *testing.T) {
	resp := BuildProfileResponse(samplePlayer(), sampleGames(), 1700000000)

	games := resp.Games
	assert.Equal(t, 3, games.TotalCount)
	assert.Equal(t, 10000, games.TotalPlaytime)
	assert.Equal(t, 166.7, games.TotalPlaytimeHours)
	assert.Equal(t, 6.9, games.TotalPlaytimeDays)
	assert.Equal(t, FormatMinutes(10000), games.TotalPlaytimeText)

	require.Len(t, games.List, 3)
	first := games.List[0]
	assert.Equal(t, 570, first.AppID)
	assert.Equal(t, 6000, first.Playtime)
	assert.Equal(t, 100.0, first.PlaytimeHours)
	assert.Equal(t, 4.2, first.PlaytimeDays)
	assert.Equal(t, "https://steamcdn-a.akamaihd.net/steamcommunity/public/images/apps/570/icon570.jpg", first.IconURL)
	assert.Empty(t, first.LogoURL)

	second := games.List[1]
	assert.Equal(t, "https://steamcdn-a.akamaihd.net/steamcommunity/public/images/apps/730/logo730.jpg", second.LogoURL)

	// Dota 2 dominates the tally at 60% -> MOBA high
	assert.Equal(t, styleTable["MOBA"].High, games.GamingStyle)
}

func TestBuildProfileResponse_SortedDescendingStable(t *testing.T) {
	owned := &models.OwnedGames{
		GameCount: 4,
		Games: []models.OwnedGame{
			{AppID: 1, Name: "A", PlaytimeForever: 100},
			{AppID: 2, Name: "B", PlaytimeForever: 500},
			{AppID: 3, Name: "C", PlaytimeForever: 100},
			{AppID: 4, Name: "D", PlaytimeForever: 500},
		},
	}

	resp := BuildProfileResponse(samplePlayer(), owned, 1700000000)

	var appIDs []int
	for _, g := range resp.Games.List {
		appIDs = append(appIDs, g.AppID)
	}
	// Ties keep fetch order: 2 before 4, 1 before 3.
	assert.Equal(t, []int{2, 4, 1, 3}, appIDs)
}

func TestBuildProfileResponse_Defaults(t *testing.T) {
	resp := BuildProfileResponse(nil, nil, 1700000000)

	assert.True(t, resp.Success)
	assert.Equal(t, "Unknown", resp.Player.PersonaName)
	assert.Equal(t, "离线", resp.Player.PersonaStateText)
	assert.Equal(t, "未知", resp.Account.AgeText)
	assert.Zero(t, resp.Games.TotalCount)
	assert.Empty(t, resp.Games.List)
	assert.Equal(t, emptyLibraryStyle, resp.Games.GamingStyle)
	assert.Equal(t, "0 分钟", resp.Games.TotalPlaytimeText)
}

func TestBuildProfileResponse_UnnamedGame(t *testing.T) {
	owned := &models.OwnedGames{
		GameCount: 1,
		Games:     []models.OwnedGame{{AppID: 42, PlaytimeForever: 10}},
	}

	resp := BuildProfileResponse(samplePlayer(), owned, 1700000000)

	require.Len(t, resp.Games.List, 1)
	assert.Equal(t, "Unknown Game", resp.Games.List[0].Name)
}

func TestBuildProfileResponse_IdempotentExceptCommentary(t *testing.T) {
	now := int64(1700000000)

	a := BuildProfileResponse(samplePlayer(), sampleGames(), now)
	b := BuildProfileResponse(samplePlayer(), sampleGames(), now)

	// Commentary is randomly selected per call; blank it out before
	// comparing the rest of the payload.
	a.Account.Comment, b.Account.Comment = "", ""
	a.Games.PlaytimeComment, b.Games.PlaytimeComment = "", ""

	assert.Equal(t, a, b)
}

func TestPersonaStateMaps(t *testing.T) {
	assert.Equal(t, "离线", PersonaStateText(0))
	assert.Equal(t, "忙碌", PersonaStateText(2))
	assert.Equal(t, "未知", PersonaStateText(99))

	assert.Equal(t, "away", PersonaStateColor(4))
	assert.Equal(t, "online", PersonaStateColor(6))
	assert.Equal(t, "offline", PersonaStateColor(99))
}
