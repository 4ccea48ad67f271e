package ytmusic

import (
	"encoding/json"
	"strconv"
)

// searchResponse is the bridge's reply envelope. A failed search may carry an
// error string alongside an empty result list.
type searchResponse struct {
	Results []searchResult `json:"results"`
	Error   string         `json:"error,omitempty"`
}

// searchResult is one raw catalog entry. The upstream mixes songs, videos,
// albums and artists in one list and is inconsistent about field names, so
// everything here is optional.
type searchResult struct {
	Type       string      `json:"type"`
	VideoID    string      `json:"videoId"`
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Artist     *artistRef  `json:"artist"`
	Artists    []artistRef `json:"artists"`
	Thumbnails []thumbnail `json:"thumbnails"`
	Duration   flexString  `json:"duration"`
	Album      *albumRef   `json:"album"`
}

type artistRef struct {
	Name string `json:"name"`
}

type albumRef struct {
	Name string `json:"name"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// sessionResponse is the reply to the session handshake.
type sessionResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// flexString decodes either a JSON string or a bare number; the upstream
// reports durations both ways.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if secs, err := n.Int64(); err == nil {
		*f = flexString(formatSeconds(secs))
		return nil
	}
	*f = flexString(n.String())
	return nil
}

func formatSeconds(secs int64) string {
	if secs < 0 {
		secs = 0
	}
	return strconv.FormatInt(secs/60, 10) + ":" + pad(secs%60)
}

func pad(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
