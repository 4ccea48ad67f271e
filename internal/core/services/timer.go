package services

import (
	"sync"
	"time"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// Default pomodoro durations in minutes.
const (
	defaultFocusMinutes      = 25
	defaultShortBreakMinutes = 5
	defaultLongBreakMinutes  = 15
	sessionsPerLongBreak     = 4
)

// Timer is the focus timer: a mode/phase counter with wall-clock elapsed
// tracking. It is independent of the music core.
type Timer struct {
	mu sync.Mutex

	mode  domain.TimerMode
	phase domain.TimerPhase

	running bool
	paused  bool

	sessionCount int
	focus        time.Duration
	shortBreak   time.Duration
	longBreak    time.Duration

	startedAt time.Time
	elapsed   time.Duration

	now func() time.Time
}

// NewTimer constructs a stopped flow-mode timer with default durations.
func NewTimer() *Timer {
	return &Timer{
		mode:         domain.TimerFlow,
		phase:        domain.PhaseFocus,
		sessionCount: 1,
		focus:        defaultFocusMinutes * time.Minute,
		shortBreak:   defaultShortBreakMinutes * time.Minute,
		longBreak:    defaultLongBreakMinutes * time.Minute,
		now:          time.Now,
	}
}

// Start begins timing from zero.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = true
	t.paused = false
	t.elapsed = 0
	t.startedAt = t.now()
}

// Pause freezes the elapsed time.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || t.paused {
		return
	}
	t.elapsed += t.now().Sub(t.startedAt)
	t.paused = true
}

// Resume continues after a pause.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || !t.paused {
		return
	}
	t.paused = false
	t.startedAt = t.now()
}

// Stop halts the timer and clears elapsed time.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = false
	t.paused = false
	t.elapsed = 0
}

// Reset stops the timer and rewinds the session counter.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = false
	t.paused = false
	t.elapsed = 0
	t.sessionCount = 1
	t.phase = domain.PhaseFocus
}

// SetMode switches between flow and pomodoro, stopping the clock.
func (t *Timer) SetMode(mode domain.TimerMode) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if mode != domain.TimerFlow && mode != domain.TimerPomodoro {
		return
	}
	t.mode = mode
	t.running = false
	t.paused = false
	t.elapsed = 0
}

// SwitchPhase jumps to the given pomodoro phase, stopping the clock.
func (t *Timer) SwitchPhase(phase domain.TimerPhase) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.switchPhaseLocked(phase)
}

// CompletePhase advances the pomodoro cycle: every fourth focus session earns
// a long break, other focus sessions a short one, and any break returns to
// focus.
func (t *Timer) CompletePhase() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == domain.PhaseFocus {
		if t.sessionCount%sessionsPerLongBreak == 0 {
			t.switchPhaseLocked(domain.PhaseLongBreak)
		} else {
			t.switchPhaseLocked(domain.PhaseShortBreak)
		}
		t.sessionCount++
		return
	}
	t.switchPhaseLocked(domain.PhaseFocus)
}

// Snapshot returns the current timer state.
func (t *Timer) Snapshot() domain.TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := t.elapsed
	if t.running && !t.paused {
		elapsed += t.now().Sub(t.startedAt)
	}

	remaining := time.Duration(0)
	if t.mode == domain.TimerPomodoro {
		remaining = t.phaseDurationLocked() - elapsed
		if remaining < 0 {
			remaining = 0
		}
	}

	return domain.TimerState{
		Mode:             t.mode,
		Phase:            t.phase,
		Running:          t.running,
		Paused:           t.paused,
		SessionCount:     t.sessionCount,
		ElapsedSeconds:   int(elapsed / time.Second),
		RemainingSeconds: int(remaining / time.Second),
	}
}

func (t *Timer) switchPhaseLocked(phase domain.TimerPhase) {
	switch phase {
	case domain.PhaseFocus, domain.PhaseShortBreak, domain.PhaseLongBreak:
	default:
		return
	}
	t.phase = phase
	t.running = false
	t.paused = false
	t.elapsed = 0
}

func (t *Timer) phaseDurationLocked() time.Duration {
	switch t.phase {
	case domain.PhaseShortBreak:
		return t.shortBreak
	case domain.PhaseLongBreak:
		return t.longBreak
	default:
		return t.focus
	}
}
