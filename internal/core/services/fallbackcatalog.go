package services

import (
	"strings"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// staticLibrary is the curated offline catalog, grouped by theme. The group
// boundaries matter: fallbackBuckets below addresses tracks by index range.
var staticLibrary = []domain.Track{
	// sad
	{ID: "1", Title: "Someone Like You", Artist: "Adele", VideoID: "hLQl3WQQoQ0", Thumbnail: "https://img.youtube.com/vi/hLQl3WQQoQ0/mqdefault.jpg"},
	{ID: "2", Title: "The Night We Met", Artist: "Lord Huron", VideoID: "KtlgYxa6BMU", Thumbnail: "https://img.youtube.com/vi/KtlgYxa6BMU/mqdefault.jpg"},
	{ID: "3", Title: "Fix You", Artist: "Coldplay", VideoID: "k4V3Mo61fJM", Thumbnail: "https://img.youtube.com/vi/k4V3Mo61fJM/mqdefault.jpg"},
	// happy
	{ID: "4", Title: "Happy", Artist: "Pharrell Williams", VideoID: "ZbZSe6N_BXs", Thumbnail: "https://img.youtube.com/vi/ZbZSe6N_BXs/mqdefault.jpg"},
	{ID: "5", Title: "Don't Stop Me Now", Artist: "Queen", VideoID: "HgzGwKwLmgM", Thumbnail: "https://img.youtube.com/vi/HgzGwKwLmgM/mqdefault.jpg"},
	{ID: "6", Title: "Can't Stop the Feeling!", Artist: "Justin Timberlake", VideoID: "ru0K8uYEZWw", Thumbnail: "https://img.youtube.com/vi/ru0K8uYEZWw/mqdefault.jpg"},
	// calm
	{ID: "7", Title: "Weightless", Artist: "Marconi Union", VideoID: "UfcAVejslrU", Thumbnail: "https://img.youtube.com/vi/UfcAVejslrU/mqdefault.jpg"},
	{ID: "8", Title: "Breathe", Artist: "Télépopmusik", VideoID: "vyut3GyQtn0", Thumbnail: "https://img.youtube.com/vi/vyut3GyQtn0/mqdefault.jpg"},
	// energetic
	{ID: "9", Title: "Eye of the Tiger", Artist: "Survivor", VideoID: "btPJPFnesV4", Thumbnail: "https://img.youtube.com/vi/btPJPFnesV4/mqdefault.jpg"},
	{ID: "10", Title: "Stronger", Artist: "Kanye West", VideoID: "PsO6ZnUZ0Ts", Thumbnail: "https://img.youtube.com/vi/PsO6ZnUZ0Ts/mqdefault.jpg"},
	// focus
	{ID: "11", Title: "Lofi Hip Hop Radio", Artist: "ChilledCow", VideoID: "jfKfPfyJRdk", Thumbnail: "https://img.youtube.com/vi/jfKfPfyJRdk/mqdefault.jpg"},
	{ID: "12", Title: "Deep Focus", Artist: "Spotify", VideoID: "5qap5aO4i9A", Thumbnail: "https://img.youtube.com/vi/5qap5aO4i9A/mqdefault.jpg"},
	// rnb
	{ID: "13", Title: "Best Part", Artist: "Daniel Caesar ft. H.E.R.", VideoID: "evilNOD_fSo", Thumbnail: "https://img.youtube.com/vi/evilNOD_fSo/mqdefault.jpg"},
	{ID: "14", Title: "Location", Artist: "Khalid", VideoID: "SfOYAqCEPNg", Thumbnail: "https://img.youtube.com/vi/SfOYAqCEPNg/mqdefault.jpg"},
	// trending
	{ID: "15", Title: "Blinding Lights", Artist: "The Weeknd", VideoID: "fHI8X4OXluQ", Thumbnail: "https://img.youtube.com/vi/fHI8X4OXluQ/mqdefault.jpg"},
	{ID: "16", Title: "Anti-Hero", Artist: "Taylor Swift", VideoID: "b1kbLwvqugk", Thumbnail: "https://img.youtube.com/vi/b1kbLwvqugk/mqdefault.jpg"},
}

// fallbackBuckets maps query keywords to index ranges of staticLibrary.
// Buckets are checked in order; the first whose keywords appear in the query
// wins. No match falls through to the head of the full library.
var fallbackBuckets = []struct {
	keywords []string
	from, to int
}{
	{[]string{"sad", "emotional"}, 0, 3},
	{[]string{"happy", "upbeat", "feel good"}, 3, 6},
	{[]string{"calm", "relax", "peaceful", "anxious"}, 6, 8},
	{[]string{"energetic", "workout", "pump"}, 8, 10},
	{[]string{"focus", "study", "lofi"}, 10, 12},
	{[]string{"rnb", "r&b"}, 12, 14},
	{[]string{"trending", "popular", "top", "hits"}, 14, 16},
}

func fallbackTracks(query string, limit int) []domain.Track {
	lower := strings.ToLower(query)

	selected := staticLibrary
	for _, bucket := range fallbackBuckets {
		if containsAny(lower, bucket.keywords) {
			selected = staticLibrary[bucket.from:bucket.to]
			break
		}
	}

	if limit > len(selected) {
		limit = len(selected)
	}
	out := make([]domain.Track, limit)
	copy(out, selected[:limit])
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
