package domain

// TimerMode selects between open-ended flow timing and pomodoro cycles.
type TimerMode string

const (
	TimerFlow     TimerMode = "flow"
	TimerPomodoro TimerMode = "pomodoro"
)

// TimerPhase is the current pomodoro phase.
type TimerPhase string

const (
	PhaseFocus      TimerPhase = "focus"
	PhaseShortBreak TimerPhase = "shortBreak"
	PhaseLongBreak  TimerPhase = "longBreak"
)

// TimerState is a snapshot of the focus timer.
type TimerState struct {
	Mode             TimerMode  `json:"mode"`
	Phase            TimerPhase `json:"phase"`
	Running          bool       `json:"running"`
	Paused           bool       `json:"paused"`
	SessionCount     int        `json:"sessionCount"`
	ElapsedSeconds   int        `json:"elapsedSeconds"`
	RemainingSeconds int        `json:"remainingSeconds"`
}
