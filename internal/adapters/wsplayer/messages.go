package wsplayer

// command is sent to the browser, which hosts the embedded player and
// executes the instruction against it.
type command struct {
	Type    string  `json:"type"`
	VideoID string  `json:"videoId,omitempty"`
	Seconds float64 `json:"seconds"`
	Volume  int     `json:"volume"`
}

const (
	cmdLoadAndPlay = "loadAndPlay"
	cmdPlay        = "play"
	cmdPause       = "pause"
	cmdSeek        = "seek"
	cmdSetVolume   = "setVolume"
)

// event is received from the browser as the player changes state.
type event struct {
	Type        string  `json:"type"`
	State       int     `json:"state"`
	CurrentTime float64 `json:"currentTime"`
	Duration    float64 `json:"duration"`
}

const (
	evtReady       = "ready"
	evtStateChange = "stateChange"
	evtProgress    = "progress"
)
