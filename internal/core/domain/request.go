package domain

// Mood is one of the eight emotional states the analyzer recognizes.
type Mood string

const (
	MoodSad       Mood = "sad"
	MoodHappy     Mood = "happy"
	MoodAnxious   Mood = "anxious"
	MoodCalm      Mood = "calm"
	MoodEnergetic Mood = "energetic"
	MoodAngry     Mood = "angry"
	MoodFocused   Mood = "focused"
	MoodTired     Mood = "tired"
)

// Moods lists every recognized mood in the fixed scan order used by the
// fallback classifier. Iteration over this slice is deterministic, unlike a
// map, so tie-breaking between overlapping keywords is stable.
var Moods = []Mood{
	MoodSad, MoodHappy, MoodAnxious, MoodCalm,
	MoodEnergetic, MoodTired, MoodAngry, MoodFocused,
}

// RequestType selects the planner branch for a MusicRequest.
type RequestType string

const (
	RequestMood     RequestType = "mood"
	RequestGenre    RequestType = "genre"
	RequestTrending RequestType = "trending"
	RequestArtist   RequestType = "artist"
	RequestActivity RequestType = "activity"
	RequestGeneral  RequestType = "general"
)

// Valid reports whether t is one of the six allowed request types.
func (t RequestType) Valid() bool {
	switch t {
	case RequestMood, RequestGenre, RequestTrending, RequestArtist, RequestActivity, RequestGeneral:
		return true
	}
	return false
}

// MusicRequest is the structured intent extracted from free user text.
// RequestType, SearchQuery and BotResponse are always populated; the rest are
// optional and the planner must tolerate any combination.
type MusicRequest struct {
	Mood        Mood        `json:"mood,omitempty"`
	DesiredMood Mood        `json:"desiredMood,omitempty"`
	Genre       string      `json:"genre,omitempty"`
	Artist      string      `json:"artist,omitempty"`
	Activity    string      `json:"activity,omitempty"`
	RequestType RequestType `json:"requestType"`
	SearchQuery string      `json:"searchQuery"`
	BotResponse string      `json:"botResponse"`
}

// CatalogQuery is one planner-produced catalog search.
type CatalogQuery struct {
	Text  string
	Limit int
}
