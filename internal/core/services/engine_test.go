package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

var errFake = errors.New("fake failure")

// fakeHandle is a scriptable player handle. It records every command and lets
// tests drive the ready and state-change callbacks by hand.
type fakeHandle struct {
	mu sync.Mutex

	loaded  []string
	plays   int
	pauses  int
	seeks   []float64
	volumes []int

	state       domain.PlayerState
	currentTime float64
	duration    float64

	cmdErr error

	onReady       func()
	onStateChange func(domain.PlayerState)
	onDisconnect  func()
}

func (f *fakeHandle) LoadAndPlay(videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.loaded = append(f.loaded, videoID)
	f.state = domain.StatePlaying
	return nil
}

func (f *fakeHandle) Play() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.plays++
	f.state = domain.StatePlaying
	return nil
}

func (f *fakeHandle) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.pauses++
	f.state = domain.StatePaused
	return nil
}

func (f *fakeHandle) Seek(seconds float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.seeks = append(f.seeks, seconds)
	return nil
}

func (f *fakeHandle) SetVolume(volume int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdErr != nil {
		return f.cmdErr
	}
	f.volumes = append(f.volumes, volume)
	return nil
}

func (f *fakeHandle) CurrentTime() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentTime
}

func (f *fakeHandle) Duration() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.duration
}

func (f *fakeHandle) State() domain.PlayerState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeHandle) OnReady(fn func())                               { f.onReady = fn }
func (f *fakeHandle) OnStateChange(fn func(state domain.PlayerState)) { f.onStateChange = fn }
func (f *fakeHandle) OnDisconnect(fn func())                          { f.onDisconnect = fn }

// becomeReady simulates the browser player finishing initialization.
func (f *fakeHandle) becomeReady() {
	if f.onReady != nil {
		f.onReady()
	}
}

// disconnects simulates the browser player going away.
func (f *fakeHandle) disconnects() {
	f.mu.Lock()
	f.state = domain.StateUnstarted
	f.mu.Unlock()
	if f.onDisconnect != nil {
		f.onDisconnect()
	}
}

// trackEnds simulates the current track finishing.
func (f *fakeHandle) trackEnds() {
	f.mu.Lock()
	f.state = domain.StateEnded
	f.mu.Unlock()
	if f.onStateChange != nil {
		f.onStateChange(domain.StateEnded)
	}
}

func (f *fakeHandle) lastLoaded(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.loaded) == 0 {
		t.Fatal("expected at least one LoadAndPlay call")
	}
	return f.loaded[len(f.loaded)-1]
}

func someTracks() []domain.Track {
	return []domain.Track{
		{ID: "1", Title: "One", Artist: "A", VideoID: "vid1"},
		{ID: "2", Title: "Two", Artist: "B", VideoID: "vid2"},
		{ID: "3", Title: "Three", Artist: "C", VideoID: "vid3"},
	}
}

func newReadyEngine(t *testing.T) (*Engine, *fakeHandle) {
	t.Helper()
	handle := &fakeHandle{}
	engine := NewEngine(handle, nil)
	handle.becomeReady()
	t.Cleanup(engine.Close)
	return engine, handle
}

func TestEngine_LoadPlaylistDoesNotAutoplay(t *testing.T) {
	engine, handle := newReadyEngine(t)

	engine.LoadPlaylist(someTracks())

	if len(handle.loaded) != 0 {
		t.Fatalf("expected no LoadAndPlay, got %v", handle.loaded)
	}
	snap := engine.Snapshot()
	if snap.IsPlaying {
		t.Fatal("expected IsPlaying false after load")
	}
	if snap.CurrentIndex != 0 {
		t.Fatalf("expected index 0, got %d", snap.CurrentIndex)
	}
}

func TestEngine_PlayStartsCurrentTrack(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())

	engine.Play()

	if got := handle.lastLoaded(t); got != "vid1" {
		t.Fatalf("expected vid1 loaded, got %s", got)
	}
	if !engine.Snapshot().IsPlaying {
		t.Fatal("expected IsPlaying true")
	}
}

func TestEngine_PlayResumesWhenPaused(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	engine.Play()
	engine.Pause()

	engine.Play()

	// A resume must not reload the track from zero.
	if len(handle.loaded) != 1 {
		t.Fatalf("expected 1 LoadAndPlay, got %d", len(handle.loaded))
	}
	if handle.plays != 1 {
		t.Fatalf("expected 1 Play command, got %d", handle.plays)
	}
	if !engine.Snapshot().IsPlaying {
		t.Fatal("expected IsPlaying true after resume")
	}
}

func TestEngine_PlayAfterNewPlaylistLoadsNewTrack(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	engine.Play()
	engine.Pause()

	engine.LoadPlaylist([]domain.Track{{ID: "9", Title: "Nine", VideoID: "vid9"}})
	engine.Play()

	// The handle still reports paused, but it holds the old media; resuming
	// in place would play the stale track.
	if got := handle.lastLoaded(t); got != "vid9" {
		t.Fatalf("expected vid9 loaded after playlist swap, got %s", got)
	}
	if handle.plays != 0 {
		t.Fatalf("expected no bare Play command, got %d", handle.plays)
	}
}

func TestEngine_PauseIsIdempotent(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	engine.Play()

	engine.Pause()
	engine.Pause()
	engine.Pause()

	if engine.Snapshot().IsPlaying {
		t.Fatal("expected IsPlaying false")
	}
	if handle.pauses != 3 {
		t.Fatalf("expected pause forwarded each time, got %d", handle.pauses)
	}
}

func TestEngine_TogglePlayRoundTrip(t *testing.T) {
	engine, _ := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())

	engine.TogglePlay()
	if !engine.Snapshot().IsPlaying {
		t.Fatal("expected playing after first toggle")
	}
	engine.TogglePlay()
	if engine.Snapshot().IsPlaying {
		t.Fatal("expected paused after second toggle")
	}
	engine.TogglePlay()
	if !engine.Snapshot().IsPlaying {
		t.Fatal("expected playing after third toggle")
	}
}

func TestEngine_NextPrevWraparound(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		steps     []int // +1 next, -1 prev
		wantIndex int
	}{
		{"next advances", 0, []int{1}, 1},
		{"next wraps at end", 0, []int{1, 1, 1}, 0},
		{"prev wraps at start", 0, []int{-1}, 2},
		{"prev then next is identity", 0, []int{-1, 1}, 0},
		{"full backward cycle", 0, []int{-1, -1, -1}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, _ := newReadyEngine(t)
			engine.LoadPlaylist(someTracks())

			for _, step := range tc.steps {
				if step > 0 {
					engine.Next()
				} else {
					engine.Prev()
				}
			}

			if got := engine.Snapshot().CurrentIndex; got != tc.wantIndex {
				t.Fatalf("expected index %d, got %d", tc.wantIndex, got)
			}
		})
	}
}

func TestEngine_NextResetsProgress(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	engine.Play()
	engine.SeekTo(42)

	engine.Next()

	snap := engine.Snapshot()
	if snap.CurrentTime != 0 {
		t.Fatalf("expected currentTime 0 after skip, got %f", snap.CurrentTime)
	}
	if got := handle.lastLoaded(t); got != "vid2" {
		t.Fatalf("expected vid2 loaded, got %s", got)
	}
}

func TestEngine_AutoAdvanceOnEnded(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	engine.Play()

	handle.trackEnds()

	if got := handle.lastLoaded(t); got != "vid2" {
		t.Fatalf("expected auto-advance to vid2, got %s", got)
	}
	snap := engine.Snapshot()
	if snap.CurrentIndex != 1 || !snap.IsPlaying {
		t.Fatalf("expected playing at index 1, got index %d playing %v", snap.CurrentIndex, snap.IsPlaying)
	}
}

func TestEngine_AutoAdvanceSkipsUnplayable(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist([]domain.Track{
		{ID: "1", Title: "One", VideoID: "vid1"},
		{ID: "2", Title: "Broken"},
		{ID: "3", Title: "Three", VideoID: "vid3"},
	})
	engine.Play()

	handle.trackEnds()

	if got := handle.lastLoaded(t); got != "vid3" {
		t.Fatalf("expected skip to vid3, got %s", got)
	}
	if got := engine.Snapshot().CurrentIndex; got != 2 {
		t.Fatalf("expected index 2, got %d", got)
	}
}

func TestEngine_AutoAdvanceWrapsToStart(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	engine.Play()
	engine.Next()
	engine.Next() // at last track

	handle.trackEnds()

	if got := engine.Snapshot().CurrentIndex; got != 0 {
		t.Fatalf("expected wrap to index 0, got %d", got)
	}
	if got := handle.lastLoaded(t); got != "vid1" {
		t.Fatalf("expected vid1 loaded, got %s", got)
	}
}

func TestEngine_AutoAdvanceHaltsWithoutPlayableTracks(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist([]domain.Track{
		{ID: "1", Title: "One", VideoID: "vid1"},
		{ID: "2", Title: "Broken"},
	})
	engine.Play()
	// Make the only other track unplayable and end the current one twice
	// over: nothing playable remains besides the current slot.
	engine.LoadPlaylist([]domain.Track{
		{ID: "2", Title: "Broken"},
		{ID: "3", Title: "Also broken"},
	})

	handle.trackEnds()

	if engine.Snapshot().IsPlaying {
		t.Fatal("expected playback halted when nothing is playable")
	}
}

func TestEngine_SeekIsOptimistic(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	engine.Play()

	engine.SeekTo(90)

	if got := engine.Snapshot().CurrentTime; got != 90 {
		t.Fatalf("expected snapshot currentTime 90, got %f", got)
	}
	if len(handle.seeks) != 1 || handle.seeks[0] != 90 {
		t.Fatalf("expected one Seek(90), got %v", handle.seeks)
	}
}

func TestEngine_SetVolumeClamps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"in range", 70, 70},
		{"below zero", -5, 0},
		{"above hundred", 140, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			engine, _ := newReadyEngine(t)
			engine.SetVolume(tc.in)
			if got := engine.Snapshot().Volume; got != tc.want {
				t.Fatalf("expected volume %d, got %d", tc.want, got)
			}
		})
	}
}

func TestEngine_MuteRoundTripRestoresVolume(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.SetVolume(70)

	engine.ToggleMute()
	snap := engine.Snapshot()
	if !snap.IsMuted {
		t.Fatal("expected muted")
	}
	if snap.Volume != 70 {
		t.Fatalf("expected stored volume 70 while muted, got %d", snap.Volume)
	}
	if got := handle.volumes[len(handle.volumes)-1]; got != 0 {
		t.Fatalf("expected handle volume 0 while muted, got %d", got)
	}

	engine.ToggleMute()
	snap = engine.Snapshot()
	if snap.IsMuted || snap.Volume != 70 {
		t.Fatalf("expected unmuted at volume 70, got muted=%v volume=%d", snap.IsMuted, snap.Volume)
	}
	if got := handle.volumes[len(handle.volumes)-1]; got != 70 {
		t.Fatalf("expected handle volume restored to 70, got %d", got)
	}
}

func TestEngine_UnmuteFromZeroVolume(t *testing.T) {
	engine, _ := newReadyEngine(t)
	engine.SetVolume(0)

	engine.ToggleMute()
	engine.ToggleMute()

	if got := engine.Snapshot().Volume; got != 50 {
		t.Fatalf("expected default volume 50 after unmute from zero, got %d", got)
	}
}

func TestEngine_CommandsBeforeReadyAreNoOps(t *testing.T) {
	handle := &fakeHandle{}
	engine := NewEngine(handle, nil)
	defer engine.Close()
	engine.LoadPlaylist(someTracks())

	engine.Play()
	engine.Next()
	engine.SeekTo(10)

	if len(handle.loaded) != 0 || len(handle.seeks) != 0 {
		t.Fatalf("expected no handle commands before ready, got loads=%v seeks=%v", handle.loaded, handle.seeks)
	}
	if engine.Snapshot().IsPlaying {
		t.Fatal("expected not playing before ready")
	}
}

func TestEngine_ReadyAppliesVolume(t *testing.T) {
	handle := &fakeHandle{}
	engine := NewEngine(handle, nil)
	defer engine.Close()

	handle.becomeReady()

	if len(handle.volumes) == 0 || handle.volumes[0] != 50 {
		t.Fatalf("expected default volume pushed on ready, got %v", handle.volumes)
	}
	if !engine.Snapshot().PlayerReady {
		t.Fatal("expected PlayerReady true")
	}
}

func TestEngine_DisconnectStopsPlaybackAndClearsReady(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	engine.Play()

	handle.disconnects()

	snap := engine.Snapshot()
	if snap.IsPlaying {
		t.Fatal("expected playback stopped on disconnect")
	}
	if snap.PlayerReady {
		t.Fatal("expected PlayerReady false on disconnect")
	}

	// Commands are no-ops until a player reattaches and reports ready.
	engine.Play()
	if len(handle.loaded) != 1 {
		t.Fatalf("expected no load while detached, got %v", handle.loaded)
	}

	// A reattached player holds no media, so Play reloads the current track.
	handle.becomeReady()
	engine.Play()
	if len(handle.loaded) != 2 || handle.lastLoaded(t) != "vid1" {
		t.Fatalf("expected reload after reattach, got %v", handle.loaded)
	}
}

func TestEngine_RejectedCommandKeepsState(t *testing.T) {
	engine, handle := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())
	handle.cmdErr = errFake

	engine.Play()

	if engine.Snapshot().IsPlaying {
		t.Fatal("expected IsPlaying false when the handle rejects the command")
	}
}

func TestEngine_SnapshotIsACopy(t *testing.T) {
	engine, _ := newReadyEngine(t)
	engine.LoadPlaylist(someTracks())

	snap := engine.Snapshot()
	snap.Playlist[0].Title = "mutated"

	if got := engine.Snapshot().Playlist[0].Title; got != "One" {
		t.Fatalf("snapshot mutation leaked into engine: %s", got)
	}
}
