package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/steam-lens/profile-api/internal/models"
)

const cdnBaseURL = "https://steamcdn-a.akamaihd.net/steamcommunity/public/images/apps"

var personaStateText = map[int]string{
	0: "离线",
	1: "在线",
	2: "忙碌",
	3: "离开",
	4: "snooze",
	5: "looking to trade",
	6: "looking to play",
}

var personaStateColor = map[int]string{
	0: "offline",
	1: "online",
	2: "busy",
	3: "away",
	4: "away",
	5: "online",
	6: "online",
}

// PersonaStateText maps a persona state code to display text.
func PersonaStateText(state int) string {
	if text, ok := personaStateText[state]; ok {
		return text
	}
	return "未知"
}

// PersonaStateColor maps a persona state code to a display color class.
func PersonaStateColor(state int) string {
	if color, ok := personaStateColor[state]; ok {
		return color
	}
	return "offline"
}

// BuildProfileResponse assembles the full lookup payload from fetched
// profile and library data. It is a total function: nil inputs and
// missing fields default instead of failing. Only the commentary fields
// vary between calls with identical inputs.
func BuildProfileResponse(player *models.PlayerSummary, owned *models.OwnedGames, nowEpoch int64) models.ProfileResponse {
	if player == nil {
		player = &models.PlayerSummary{}
	}
	if owned == nil {
		owned = &models.OwnedGames{}
	}

	personaName := player.PersonaName
	if personaName == "" {
		personaName = "Unknown"
	}

	resp := models.ProfileResponse{
		Success: true,
		Player: models.PlayerPayload{
			SteamID:                  player.SteamID,
			PersonaName:              personaName,
			ProfileURL:               player.ProfileURL,
			Avatar:                   player.AvatarFull,
			AvatarMedium:             player.AvatarMedium,
			AvatarSmall:              player.Avatar,
			PersonaState:             player.PersonaState,
			PersonaStateText:         PersonaStateText(player.PersonaState),
			PersonaStateColor:        PersonaStateColor(player.PersonaState),
			CommunityVisibilityState: player.CommunityVisibilityState,
			ProfileState:             player.ProfileState,
			LastLogoff:               player.LastLogoff,
			CommentPermission:        player.CommentPermission,
			RealName:                 player.RealName,
			PrimaryClanID:            player.PrimaryClanID,
			TimeCreated:              player.TimeCreated,
			GameID:                   player.GameID,
			GameServerIP:             player.GameServerIP,
			GameExtraInfo:            player.GameExtraInfo,
			CityID:                   player.CityID,
			LocCountryCode:           player.LocCountryCode,
			LocStateCode:             player.LocStateCode,
			LocCityID:                player.LocCityID,
		},
		Account: ComputeAccountAge(player.TimeCreated, nowEpoch),
	}

	totalPlaytime := 0
	tally := NewGenreTally()
	list := make([]models.GamePayload, 0, len(owned.Games))

	for _, game := range owned.Games {
		name := game.Name
		if name == "" {
			name = "Unknown Game"
		}

		totalPlaytime += game.PlaytimeForever
		tally.Add(ClassifyGenre(name), game.PlaytimeForever)

		logoURL := ""
		if game.ImgLogoURL != "" {
			logoURL = fmt.Sprintf("%s/%d/%s.jpg", cdnBaseURL, game.AppID, game.ImgLogoURL)
		}

		list = append(list, models.GamePayload{
			AppID:                    game.AppID,
			Name:                     name,
			Playtime:                 game.PlaytimeForever,
			PlaytimeHours:            round1(float64(game.PlaytimeForever) / minutesPerHour),
			PlaytimeText:             FormatMinutes(game.PlaytimeForever),
			PlaytimeDays:             round1(float64(game.PlaytimeForever) / minutesPerDay),
			IconURL:                  fmt.Sprintf("%s/%d/%s.jpg", cdnBaseURL, game.AppID, game.ImgIconURL),
			LogoURL:                  logoURL,
			HasCommunityVisibleStats: game.HasCommunityVisibleStats,
			PlaytimeWindows:          game.PlaytimeWindowsForever,
			PlaytimeMac:              game.PlaytimeMacForever,
			PlaytimeLinux:            game.PlaytimeLinuxForever,
			RtimeLastPlayed:          game.RtimeLastPlayed,
		})
	}

	// Descending by playtime; stable keeps fetch order on ties.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Playtime > list[j].Playtime
	})

	resp.Games = models.GamesPayload{
		TotalCount:         owned.GameCount,
		TotalPlaytime:      totalPlaytime,
		TotalPlaytimeHours: round1(float64(totalPlaytime) / minutesPerHour),
		TotalPlaytimeDays:  round1(float64(totalPlaytime) / minutesPerDay),
		TotalPlaytimeText:  FormatMinutes(totalPlaytime),
		PlaytimeComment:    TotalPlaytimeComment(totalPlaytime),
		GamingStyle:        GamingStyle(tally, totalPlaytime),
		List:               list,
	}

	return resp
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
