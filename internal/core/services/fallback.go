package services

import (
	"regexp"
	"strings"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// moodSynonyms maps each mood to its trigger words. detectMood scans in
// domain.Moods order: when text matches several moods the first one wins.
var moodSynonyms = map[domain.Mood][]string{
	domain.MoodSad:       {"sad", "depressed", "down", "unhappy", "melancholy"},
	domain.MoodHappy:     {"happy", "joyful", "cheerful", "upbeat", "excited"},
	domain.MoodAnxious:   {"anxious", "worried", "stressed", "nervous", "tense"},
	domain.MoodCalm:      {"calm", "peaceful", "relaxed", "serene", "tranquil"},
	domain.MoodEnergetic: {"energetic", "pumped", "motivated", "active", "hyped"},
	domain.MoodTired:     {"tired", "exhausted", "drained", "sleepy", "weary"},
	domain.MoodAngry:     {"angry", "frustrated", "mad", "annoyed", "upset"},
	domain.MoodFocused:   {"focused", "concentrate", "productive", "study"},
}

var (
	trendingPattern = regexp.MustCompile(`trending|top\s*\d+|popular|hot|chart`)
	genrePattern    = regexp.MustCompile(`\b(rnb|r&b|pop|rock|jazz|hiphop|hip hop|lofi|lo-fi|edm|country|metal)\b`)
)

// fallbackAnalysis classifies text without the language model. Precedence:
// trending > mood > genre > general.
func fallbackAnalysis(text string) domain.MusicRequest {
	lower := strings.ToLower(text)

	if lower == "" {
		return domain.MusicRequest{
			RequestType: domain.RequestGeneral,
			SearchQuery: "music",
			BotResponse: "Tell me how you're feeling or what you want to hear, and I'll find it! 🎵",
		}
	}

	if trendingPattern.MatchString(lower) {
		return domain.MusicRequest{
			RequestType: domain.RequestTrending,
			SearchQuery: "top hits 2024",
			BotResponse: "Here are the trending hits right now! 🔥",
		}
	}

	mood := detectMood(lower)
	genre := ""
	if m := genrePattern.FindStringSubmatch(lower); m != nil {
		genre = m[1]
	}

	if mood != "" {
		query := string(mood) + " music"
		response := "I understand you're feeling " + string(mood) + ". What kind of music would help you right now?"
		if genre != "" {
			query = string(mood) + " " + genre + " music"
			response = "I understand you're feeling " + string(mood) + ". Loading some " + genre + " tracks."
		}
		return domain.MusicRequest{
			Mood:        mood,
			Genre:       genre,
			RequestType: domain.RequestMood,
			SearchQuery: query,
			BotResponse: response,
		}
	}

	if genre != "" {
		return domain.MusicRequest{
			Genre:       genre,
			RequestType: domain.RequestGenre,
			SearchQuery: genre + " music playlist",
			BotResponse: "Great choice! Loading " + strings.ToUpper(genre) + " music for you. 🎵",
		}
	}

	return domain.MusicRequest{
		RequestType: domain.RequestGeneral,
		SearchQuery: text,
		BotResponse: "Let me search for that! 🎵",
	}
}

func detectMood(lower string) domain.Mood {
	for _, mood := range domain.Moods {
		for _, word := range moodSynonyms[mood] {
			if strings.Contains(lower, word) {
				return mood
			}
		}
	}
	return ""
}
