package domain

// Sentinel display values applied when the catalog source omits metadata.
const (
	UnknownTitle  = "Unknown Title"
	UnknownArtist = "Unknown Artist"
)

// Track represents a playable unit in the domain layer. VideoID is the opaque
// reference the external player understands; a track without one can be
// listed but never dispatched to the player.
type Track struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	VideoID   string `json:"videoId"`
	Thumbnail string `json:"thumbnail"`
	Duration  string `json:"duration,omitempty"`
	Album     string `json:"album,omitempty"`
}

// Playable reports whether the track carries a usable player reference.
func (t Track) Playable() bool {
	return t.VideoID != ""
}
