package wsplayer

import (
	"errors"
	"sync"

	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
)

// ErrNotConnected is returned for commands issued while no browser player
// is attached.
var ErrNotConnected = errors.New("wsplayer: no player connected")

// Handle is a player handle backed by a websocket connection to the browser
// that hosts the embedded player. Commands go down as JSON messages; the
// browser reports readiness, state changes and progress back up. The handle
// outlives individual connections: a page reload detaches the old socket and
// the next connection reattaches.
type Handle struct {
	log *zap.Logger

	mu          sync.Mutex
	conn        *websocket.Conn
	ready       bool
	state       domain.PlayerState
	currentTime float64
	duration    float64

	onReady       func()
	onStateChange func(domain.PlayerState)
	onDisconnect  func()

	// writeMu serializes writes; gofiber websocket conns allow one
	// concurrent writer.
	writeMu sync.Mutex
}

// compile-time interface assertion
var _ ports.PlayerHandle = (*Handle)(nil)

func NewHandle(log *zap.Logger) *Handle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handle{
		log:   log,
		state: domain.StateUnstarted,
	}
}

// Attach binds a websocket connection and pumps its events until the
// connection drops. It blocks, so it is called from the websocket route
// handler's goroutine.
func (h *Handle) Attach(conn *websocket.Conn) {
	h.mu.Lock()
	if h.conn != nil {
		old := h.conn
		h.conn = nil
		_ = old.Close()
	}
	h.conn = conn
	h.mu.Unlock()

	h.log.Info("player connected")
	h.readLoop(conn)
	h.detach(conn)
}

func (h *Handle) detach(conn *websocket.Conn) {
	h.mu.Lock()
	if h.conn != conn {
		h.mu.Unlock()
		return
	}
	h.conn = nil
	h.ready = false
	h.state = domain.StateUnstarted
	fire := h.onDisconnect
	h.mu.Unlock()

	h.log.Info("player disconnected")
	if fire != nil {
		fire()
	}
}

func (h *Handle) readLoop(conn *websocket.Conn) {
	for {
		var evt event
		if err := conn.ReadJSON(&evt); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("player socket closed unexpectedly", zap.Error(err))
			}
			return
		}
		h.handleEvent(evt)
	}
}

// handleEvent updates cached player state and fires callbacks. Callbacks are
// invoked after the lock is released; the playback engine issues handle
// commands from inside them.
func (h *Handle) handleEvent(evt event) {
	var (
		fireReady func()
		fireState func(domain.PlayerState)
		newState  domain.PlayerState
	)

	h.mu.Lock()
	switch evt.Type {
	case evtReady:
		h.ready = true
		fireReady = h.onReady
	case evtStateChange:
		newState = domain.PlayerState(evt.State)
		h.state = newState
		fireState = h.onStateChange
	case evtProgress:
		h.currentTime = evt.CurrentTime
		h.duration = evt.Duration
	default:
		h.log.Debug("unknown player event", zap.String("type", evt.Type))
	}
	h.mu.Unlock()

	if fireReady != nil {
		fireReady()
	}
	if fireState != nil {
		fireState(newState)
	}
}

func (h *Handle) send(cmd command) error {
	h.mu.Lock()
	conn := h.conn
	h.mu.Unlock()

	if conn == nil {
		return ErrNotConnected
	}

	h.writeMu.Lock()
	defer h.writeMu.Unlock()
	if err := conn.WriteJSON(cmd); err != nil {
		return errors.Join(ErrNotConnected, err)
	}
	return nil
}

func (h *Handle) LoadAndPlay(videoID string) error {
	return h.send(command{Type: cmdLoadAndPlay, VideoID: videoID})
}

func (h *Handle) Play() error {
	return h.send(command{Type: cmdPlay})
}

func (h *Handle) Pause() error {
	return h.send(command{Type: cmdPause})
}

func (h *Handle) Seek(seconds float64) error {
	return h.send(command{Type: cmdSeek, Seconds: seconds})
}

func (h *Handle) SetVolume(volume int) error {
	return h.send(command{Type: cmdSetVolume, Volume: volume})
}

func (h *Handle) CurrentTime() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.currentTime
}

func (h *Handle) Duration() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.duration
}

func (h *Handle) State() domain.PlayerState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// OnReady registers the readiness callback. If a player is already attached
// and ready, the callback fires immediately.
func (h *Handle) OnReady(fn func()) {
	h.mu.Lock()
	h.onReady = fn
	alreadyReady := h.ready
	h.mu.Unlock()

	if alreadyReady && fn != nil {
		fn()
	}
}

func (h *Handle) OnStateChange(fn func(state domain.PlayerState)) {
	h.mu.Lock()
	h.onStateChange = fn
	h.mu.Unlock()
}

// OnDisconnect registers the callback fired after a connection detaches.
func (h *Handle) OnDisconnect(fn func()) {
	h.mu.Lock()
	h.onDisconnect = fn
	h.mu.Unlock()
}
