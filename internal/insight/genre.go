package insight

import (
	"github.com/steam-lens/profile-api/internal/utils"
)

// GenreOther is the fallback label for titles no keyword matches.
const GenreOther = "Other"

type genreEntry struct {
	Name     string
	Keywords []string
}

// genreTable order is the tie-break rule: a title matching several genres
// gets the first one listed. "PUBG" appears under both FPS and Battle
// Royale and must classify as FPS.
var genreTable = []genreEntry{
	{"FPS", []string{"Counter-Strike", "CS", "Valorant", "Overwatch", "Call of Duty", "Battlefield", "Apex Legends", "PUBG", "Rainbow Six", "Team Fortress"}},
	{"MOBA", []string{"Dota 2", "League of Legends", "LOL", "Heroes of the Storm", "Smite"}},
	{"RPG", []string{"The Witcher", "Elder Scrolls", "Skyrim", "Fallout", "Mass Effect", "Dragon Age", "Dark Souls", "Elden Ring", "Final Fantasy"}},
	{"MMORPG", []string{"World of Warcraft", "WOW", "Guild Wars", "Final Fantasy XIV", "Black Desert", "Genshin Impact"}},
	{"Battle Royale", []string{"PUBG", "Fortnite", "Apex Legends", "Call of Duty: Warzone"}},
	{"Strategy", []string{"Civilization", "Total War", "StarCraft", "Age of Empires", "Crusader Kings", "Europa Universalis"}},
	{"Sandbox", []string{"Minecraft", "Terraria", "Starbound", "Factorio", "Satisfactory"}},
	{"Racing", []string{"Forza", "Need for Speed", "Gran Turismo", "F1", "Assetto Corsa"}},
	{"Sports", []string{"FIFA", "NBA", "eFootball", "Football Manager"}},
	{"Horror", []string{"Resident Evil", "Silent Hill", "Dead Space", "Outlast", "Amnesia"}},
	{"Indie", []string{"Hades", "Celeste", "Hollow Knight", "Stardew Valley", "Undertale"}},
	{"Action", []string{"Grand Theft Auto", "GTA", "Red Dead Redemption", "Assassin's Creed", "Watch Dogs"}},
	{"Adventure", []string{"Uncharted", "Tomb Raider", "Life is Strange", "The Walking Dead"}},
}

// ClassifyGenre infers a genre from a game title by case-insensitive
// substring match against the keyword table. First table entry wins.
func ClassifyGenre(name string) string {
	for _, entry := range genreTable {
		for _, keyword := range entry.Keywords {
			if utils.ContainsFold(name, keyword) {
				return entry.Name
			}
		}
	}
	return GenreOther
}

// GenreTally accumulates playtime minutes per genre across a library.
// Insertion order is preserved so that Top resolves ties to the genre
// seen first.
type GenreTally struct {
	order   []string
	minutes map[string]int
}

func NewGenreTally() *GenreTally {
	return &GenreTally{minutes: make(map[string]int)}
}

// Add accumulates minutes under the given genre.
func (t *GenreTally) Add(genre string, minutes int) {
	if _, seen := t.minutes[genre]; !seen {
		t.order = append(t.order, genre)
	}
	t.minutes[genre] += minutes
}

// Len returns the number of distinct genres tallied.
func (t *GenreTally) Len() int {
	return len(t.order)
}

// Minutes returns the accumulated minutes for a genre.
func (t *GenreTally) Minutes(genre string) int {
	return t.minutes[genre]
}

// Top returns the genre with the most accumulated minutes. On ties the
// first-inserted genre wins (strictly-greater comparison over insertion
// order).
func (t *GenreTally) Top() (string, int) {
	top, topMinutes := "", -1
	for _, genre := range t.order {
		if t.minutes[genre] > topMinutes {
			top, topMinutes = genre, t.minutes[genre]
		}
	}
	if topMinutes < 0 {
		return "", 0
	}
	return top, topMinutes
}
