package ports

import "github.com/nagare-labs/nagare/backend/internal/core/domain"

// PlayerHandle is the narrow surface of the external media player. The engine
// is its only consumer. Commands on a handle that is not ready return an
// error; the engine treats those as no-ops rather than failures.
//
// OnReady, OnStateChange and OnDisconnect register lifecycle callbacks. A
// handle invokes OnReady once it can accept commands, OnStateChange on every
// player state transition, including domain.StateEnded when the current media
// finishes, and OnDisconnect when the player goes away and the handle can no
// longer accept commands. After a disconnect the handle reports ready again
// via OnReady once a player reattaches.
type PlayerHandle interface {
	LoadAndPlay(videoID string) error
	Play() error
	Pause() error
	Seek(seconds float64) error
	SetVolume(volume int) error

	CurrentTime() float64
	Duration() float64
	State() domain.PlayerState

	OnReady(fn func())
	OnStateChange(fn func(state domain.PlayerState))
	OnDisconnect(fn func())
}
