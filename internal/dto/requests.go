package dto

// AnalyzeRequest carries one free-text music message.
type AnalyzeRequest struct {
	Message string `json:"message" validate:"required"`
}

// MusicRequestBody drives the full request pipeline: analyze, plan, search
// and load the result into the player.
type MusicRequestBody struct {
	Message string `json:"message" validate:"required"`
}

type SeekRequest struct {
	Seconds float64 `json:"seconds" validate:"gte=0"`
}

type VolumeRequest struct {
	Volume int `json:"volume" validate:"gte=0,lte=100"`
}

type CreateTaskRequest struct {
	Title    string   `json:"title" validate:"required"`
	Note     string   `json:"note"`
	Priority string   `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Tags     []string `json:"tags"`
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type MoveTaskRequest struct {
	Status string `json:"status" validate:"required,oneof=planned in-progress done"`
}

type TimerModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=flow pomodoro"`
}

type TimerPhaseRequest struct {
	Phase string `json:"phase" validate:"required,oneof=focus shortBreak longBreak"`
}
