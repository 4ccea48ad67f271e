package domain

// PlayerState mirrors the state codes reported by the external media player.
// The numeric values follow the YouTube iframe convention the browser-side
// player emits.
type PlayerState int

const (
	StateUnstarted PlayerState = -1
	StateEnded     PlayerState = 0
	StatePlaying   PlayerState = 1
	StatePaused    PlayerState = 2
	StateBuffering PlayerState = 3
)

// PlaybackState is a point-in-time snapshot of the engine. CurrentTime and
// Duration hold the last polled values from the player and are not
// authoritative between polls.
type PlaybackState struct {
	Playlist     []Track `json:"playlist"`
	CurrentIndex int     `json:"currentIndex"`
	IsPlaying    bool    `json:"isPlaying"`
	IsMuted      bool    `json:"isMuted"`
	Volume       int     `json:"volume"`
	CurrentTime  float64 `json:"currentTime"`
	Duration     float64 `json:"duration"`
	IsLoading    bool    `json:"isLoading"`
	PlayerReady  bool    `json:"playerReady"`
}
