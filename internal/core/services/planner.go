package services

import (
	"fmt"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// Result-count bounds per request branch. Narrow intents fetch less, broad
// ones fetch more for diversity.
const (
	trendingLimit = 20
	moodLimit     = 15
	genreLimit    = 15
	artistLimit   = 12
	generalLimit  = 15
)

// moodPhrases maps a target mood to the catalog phrase known to surface the
// right kind of results. Moods that express discomfort (anxious, tired) are
// answered with their remedy rather than echoed.
var moodPhrases = map[domain.Mood]string{
	domain.MoodHappy:     "happy upbeat feel good music",
	domain.MoodSad:       "sad emotional music",
	domain.MoodCalm:      "calm relaxing peaceful music",
	domain.MoodEnergetic: "energetic pump up music",
	domain.MoodAnxious:   "calming soothing music",
	domain.MoodAngry:     "intense music",
	domain.MoodFocused:   "focus study lofi music",
	domain.MoodTired:     "relaxing sleep music",
}

// Planner maps a MusicRequest to catalog queries. Plan is deterministic:
// identical requests always produce identical queries and limits.
type Planner struct {
	trendingYear int
}

func NewPlanner(trendingYear int) *Planner {
	if trendingYear <= 0 {
		trendingYear = 2024
	}
	return &Planner{trendingYear: trendingYear}
}

// Plan returns the ordered catalog queries for req. Today every branch emits
// a single query; the slice return leaves room for multi-query fan-out.
func (p *Planner) Plan(req domain.MusicRequest) []domain.CatalogQuery {
	switch req.RequestType {
	case domain.RequestTrending:
		return []domain.CatalogQuery{{
			Text:  fmt.Sprintf("top hits %d trending songs", p.trendingYear),
			Limit: trendingLimit,
		}}
	case domain.RequestMood:
		return []domain.CatalogQuery{{Text: p.moodQuery(req), Limit: moodLimit}}
	case domain.RequestGenre:
		return []domain.CatalogQuery{{
			Text:  req.Genre + " music playlist songs",
			Limit: genreLimit,
		}}
	case domain.RequestArtist:
		return []domain.CatalogQuery{{
			Text:  req.Artist + " songs music",
			Limit: artistLimit,
		}}
	default: // activity and general use the analyzer's query verbatim
		return []domain.CatalogQuery{{Text: req.SearchQuery, Limit: generalLimit}}
	}
}

func (p *Planner) moodQuery(req domain.MusicRequest) string {
	target := req.DesiredMood
	if target == "" {
		target = req.Mood
	}
	if target == "" {
		target = domain.MoodCalm
	}

	query, ok := moodPhrases[target]
	if !ok {
		query = string(target) + " music"
	}
	if req.Genre != "" {
		query += " " + req.Genre
	}
	return query
}
