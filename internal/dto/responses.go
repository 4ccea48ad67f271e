package dto

import "github.com/nagare-labs/nagare/backend/internal/core/domain"

// AnalyzeResponse is the analyzed intent for a message.
type AnalyzeResponse struct {
	Request domain.MusicRequest `json:"request"`
}

// MusicRequestResponse is the outcome of the full pipeline: the analyzed
// intent plus the tracks that were loaded into the player.
type MusicRequestResponse struct {
	Request domain.MusicRequest `json:"request"`
	Tracks  []domain.Track      `json:"tracks"`
}

type SearchResponse struct {
	Tracks []domain.Track `json:"tracks"`
}

type PlayerStateResponse struct {
	State domain.PlaybackState `json:"state"`
}

type TaskResponse struct {
	Task domain.Task `json:"task"`
}

type TaskListResponse struct {
	Tasks []domain.Task `json:"tasks"`
}

type TimerStateResponse struct {
	State domain.TimerState `json:"state"`
}
