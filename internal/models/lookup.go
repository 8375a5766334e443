package models

// LookupRequest represents the lookup request payload
type LookupRequest struct {
	FriendCode string `json:"friendCode" validate:"required"`
}

// ProfileResponse is the aggregated lookup result. Field names are the
// wire contract consumed by the frontend.
type ProfileResponse struct {
	Success bool           `json:"success"`
	Player  PlayerPayload  `json:"player"`
	Account AccountPayload `json:"account"`
	Games   GamesPayload   `json:"games"`
}

// PlayerPayload carries the public profile fields
type PlayerPayload struct {
	SteamID                  string `json:"steamId"`
	PersonaName              string `json:"personaName"`
	ProfileURL               string `json:"profileUrl"`
	Avatar                   string `json:"avatar"`
	AvatarMedium             string `json:"avatarMedium"`
	AvatarSmall              string `json:"avatarSmall"`
	PersonaState             int    `json:"personaState"`
	PersonaStateText         string `json:"personaStateText"`
	PersonaStateColor        string `json:"personaStateColor"`
	CommunityVisibilityState int    `json:"communityVisibilityState"`
	ProfileState             int    `json:"profileState"`
	LastLogoff               int64  `json:"lastLogoff"`
	CommentPermission        int    `json:"commentPermission"`
	RealName                 string `json:"realName"`
	PrimaryClanID            string `json:"primaryClanId"`
	TimeCreated              int64  `json:"timeCreated"`
	GameID                   string `json:"gameId"`
	GameServerIP             string `json:"gameServerIp"`
	GameExtraInfo            string `json:"gameExtraInfo"`
	CityID                   int    `json:"cityId"`
	LocCountryCode           string `json:"locCountryCode"`
	LocStateCode             string `json:"locStateCode"`
	LocCityID                int    `json:"locCityId"`
}

// AccountPayload carries the derived account-age block
type AccountPayload struct {
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	Age       int    `json:"age"` // days
	AgeText   string `json:"ageText"`
	Comment   string `json:"comment"`
}

// GamesPayload carries library totals plus the per-game list
type GamesPayload struct {
	TotalCount         int           `json:"totalCount"`
	TotalPlaytime      int           `json:"totalPlaytime"` // minutes
	TotalPlaytimeHours float64       `json:"totalPlaytimeHours"`
	TotalPlaytimeDays  float64       `json:"totalPlaytimeDays"`
	TotalPlaytimeText  string        `json:"totalPlaytimeText"`
	PlaytimeComment    string        `json:"playtimeComment"`
	GamingStyle        string        `json:"gamingStyle"`
	List               []GamePayload `json:"list"`
}

// GamePayload is a single library entry, sorted descending by Playtime
// in the response list
type GamePayload struct {
	AppID                    int     `json:"appId"`
	Name                     string  `json:"name"`
	Playtime                 int     `json:"playtime"` // minutes
	PlaytimeHours            float64 `json:"playtimeHours"`
	PlaytimeText             string  `json:"playtimeText"`
	PlaytimeDays             float64 `json:"playtimeDays"`
	IconURL                  string  `json:"iconUrl"`
	LogoURL                  string  `json:"logoUrl"`
	HasCommunityVisibleStats bool    `json:"hasCommunityVisibleStats"`
	PlaytimeWindows          int     `json:"playtimeWindows"`
	PlaytimeMac              int     `json:"playtimeMac"`
	PlaytimeLinux            int     `json:"playtimeLinux"`
	RtimeLastPlayed          int64   `json:"rtimeLastPlayed"`
}
