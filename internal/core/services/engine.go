package services

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
)

const (
	defaultVolume = 50
	pollInterval  = time.Second
)

// Engine owns the active playlist and drives the external player handle. All
// state lives behind one mutex, the Go rendition of the single control thread
// the player API assumes: UI commands and handle callbacks may interleave but
// never run concurrently.
//
// Every command is a safe no-op when the handle is not ready or the playlist
// is empty. No command queues; callers simply retry after the handle reports
// ready.
type Engine struct {
	mu     sync.Mutex
	handle ports.PlayerHandle
	log    *zap.Logger

	ready    bool
	playlist []domain.Track
	current  int
	playing  bool
	muted    bool
	volume   int
	loading  bool

	// loaded is the video id last dispatched to the handle. Resuming in
	// place is only valid while the handle still holds that same media.
	loaded string

	currentTime float64
	duration    float64

	pollStop chan struct{}
	closed   bool
}

// NewEngine constructs the engine and subscribes to the handle's lifecycle
// callbacks. handle may be nil for a headless session; every playback command
// is then a no-op while the rest of the pipeline keeps working.
func NewEngine(handle ports.PlayerHandle, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{handle: handle, volume: defaultVolume, log: log}
	if handle != nil {
		handle.OnReady(e.handleReady)
		handle.OnStateChange(e.handleStateChange)
		handle.OnDisconnect(e.handleDisconnect)
	}
	return e
}

// LoadPlaylist replaces the playlist wholesale and rewinds to the first
// track. Playback does not start automatically.
func (e *Engine) LoadPlaylist(tracks []domain.Track) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.playlist = make([]domain.Track, len(tracks))
	copy(e.playlist, tracks)
	e.current = 0
	e.currentTime = 0
	e.duration = 0
	e.loaded = ""
	e.setPlayingLocked(false)
}

// Play starts the current track, or resumes in place when the handle still
// holds the current track paused so it does not restart from zero.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready || e.handle == nil || len(e.playlist) == 0 {
		return
	}
	if e.handle.State() == domain.StatePaused && e.loaded != "" && e.loaded == e.playlist[e.current].VideoID {
		if err := e.handle.Play(); err != nil {
			e.log.Warn("player resume rejected", zap.String("module", "engine"), zap.Error(err))
			return
		}
		e.setPlayingLocked(true)
		return
	}
	e.startCurrentLocked()
}

// Pause stops playback without losing position. Calling it when nothing is
// playing changes nothing.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pauseLocked()
}

// TogglePlay flips between Play and Pause based on current state.
func (e *Engine) TogglePlay() {
	e.mu.Lock()
	playing := e.playing
	e.mu.Unlock()

	if playing {
		e.Pause()
	} else {
		e.Play()
	}
}

// Next advances to the following track with wraparound.
func (e *Engine) Next() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepLocked(1)
}

// Prev steps back to the previous track with wraparound.
func (e *Engine) Prev() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stepLocked(-1)
}

// SeekTo jumps to the given position. The new position is reflected in the
// snapshot immediately, optimistically, until the next poll confirms it.
func (e *Engine) SeekTo(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.ready || e.handle == nil {
		return
	}
	if err := e.handle.Seek(seconds); err != nil {
		e.log.Warn("player seek rejected", zap.String("module", "engine"), zap.Error(err))
		return
	}
	e.currentTime = seconds
}

// SetVolume clamps v to [0,100] and propagates it to the handle.
func (e *Engine) SetVolume(v int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	e.volume = v
	e.applyVolumeLocked()
}

// ToggleMute silences the handle while preserving the last non-zero volume,
// so un-muting restores the previous level.
func (e *Engine) ToggleMute() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.muted {
		e.muted = false
		if e.volume == 0 {
			e.volume = defaultVolume
		}
	} else {
		e.muted = true
	}
	e.applyVolumeLocked()
}

// SetLoading marks whether a catalog fetch for a new request is outstanding.
func (e *Engine) SetLoading(loading bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loading = loading
}

// Snapshot returns a copy of the current playback state.
func (e *Engine) Snapshot() domain.PlaybackState {
	e.mu.Lock()
	defer e.mu.Unlock()

	playlist := make([]domain.Track, len(e.playlist))
	copy(playlist, e.playlist)
	return domain.PlaybackState{
		Playlist:     playlist,
		CurrentIndex: e.current,
		IsPlaying:    e.playing,
		IsMuted:      e.muted,
		Volume:       e.volume,
		CurrentTime:  e.currentTime,
		Duration:     e.duration,
		IsLoading:    e.loading,
		PlayerReady:  e.ready,
	}
}

// Close tears the engine down and cancels the progress poll.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.playing = false
	e.stopPollLocked()
}

// --- handle callbacks ---

func (e *Engine) handleReady() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ready = true
	e.applyVolumeLocked()
	e.log.Info("player handle ready", zap.String("module", "engine"))
}

func (e *Engine) handleDisconnect() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ready = false
	e.loaded = ""
	e.setPlayingLocked(false)
	e.log.Info("player handle detached", zap.String("module", "engine"))
}

func (e *Engine) handleStateChange(state domain.PlayerState) {
	if state != domain.StateEnded {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoAdvanceLocked()
}

// --- internals (callers hold e.mu) ---

func (e *Engine) pauseLocked() {
	if !e.ready || e.handle == nil {
		return
	}
	if err := e.handle.Pause(); err != nil {
		e.log.Warn("player pause rejected", zap.String("module", "engine"), zap.Error(err))
	}
	e.setPlayingLocked(false)
}

// stepLocked moves the index by delta with wraparound and starts the new
// current track. The index is always recomputed from current state, so a
// racing auto-advance cannot push it out of bounds.
func (e *Engine) stepLocked(delta int) {
	n := len(e.playlist)
	if n == 0 {
		return
	}
	e.current = ((e.current+delta)%n + n) % n
	e.currentTime = 0
	e.duration = 0
	e.startCurrentLocked()
}

// autoAdvanceLocked reacts to the handle's ended signal: it behaves like Next
// but skips unplayable entries, scanning forward at most one full cycle.
// When no playable track remains, playback halts.
func (e *Engine) autoAdvanceLocked() {
	n := len(e.playlist)
	if n == 0 {
		return
	}
	for step := 1; step <= n; step++ {
		idx := (e.current + step) % n
		if e.playlist[idx].Playable() {
			e.current = idx
			e.currentTime = 0
			e.duration = 0
			e.startCurrentLocked()
			return
		}
	}
	e.log.Warn("no playable track in playlist, halting", zap.String("module", "engine"))
	e.setPlayingLocked(false)
}

func (e *Engine) startCurrentLocked() {
	if !e.ready || e.handle == nil || len(e.playlist) == 0 {
		return
	}
	track := e.playlist[e.current]
	if !track.Playable() {
		return
	}
	if err := e.handle.LoadAndPlay(track.VideoID); err != nil {
		e.log.Warn("player load rejected",
			zap.String("module", "engine"), zap.String("videoId", track.VideoID), zap.Error(err))
		return
	}
	e.loaded = track.VideoID
	e.setPlayingLocked(true)
}

func (e *Engine) applyVolumeLocked() {
	if !e.ready || e.handle == nil {
		return
	}
	v := e.volume
	if e.muted {
		v = 0
	}
	if err := e.handle.SetVolume(v); err != nil {
		e.log.Warn("player volume rejected", zap.String("module", "engine"), zap.Error(err))
	}
}

func (e *Engine) setPlayingLocked(playing bool) {
	e.playing = playing
	if playing {
		e.startPollLocked()
	} else {
		e.stopPollLocked()
	}
}

// --- progress polling ---

func (e *Engine) startPollLocked() {
	if e.pollStop != nil || e.closed {
		return
	}
	stop := make(chan struct{})
	e.pollStop = stop
	go e.poll(stop)
}

func (e *Engine) stopPollLocked() {
	if e.pollStop != nil {
		close(e.pollStop)
		e.pollStop = nil
	}
}

func (e *Engine) poll(stop chan struct{}) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.mu.Lock()
			if e.playing && e.handle != nil {
				e.currentTime = e.handle.CurrentTime()
				e.duration = e.handle.Duration()
			}
			e.mu.Unlock()
		}
	}
}
