package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// ErrNoJSON indicates the model reply contained no JSON object at all.
var ErrNoJSON = errors.New("no JSON object in model response")

var validate = validator.New()

// requestPayload is the raw shape of the model's reply. Optional fields may
// hold the literal string "null", which some models emit instead of JSON null.
type requestPayload struct {
	Mood        string `json:"mood"`
	DesiredMood string `json:"desiredMood"`
	Genre       string `json:"genre"`
	Artist      string `json:"artist"`
	Activity    string `json:"activity"`
	RequestType string `json:"requestType" validate:"required,oneof=mood genre trending artist activity general"`
	SearchQuery string `json:"searchQuery" validate:"required"`
	BotResponse string `json:"botResponse" validate:"required"`
}

// ParseMusicRequest extracts the first balanced {...} span from untrusted
// model text, decodes it, and validates the MusicRequest contract. It is a
// pure function so the contract can be tested without network access.
func ParseMusicRequest(text string) (domain.MusicRequest, error) {
	span, ok := firstJSONObject(text)
	if !ok {
		return domain.MusicRequest{}, ErrNoJSON
	}

	var payload requestPayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return domain.MusicRequest{}, fmt.Errorf("decode model response: %w", err)
	}

	payload.Mood = cleanOptional(payload.Mood, true)
	payload.DesiredMood = cleanOptional(payload.DesiredMood, true)
	payload.Genre = cleanOptional(payload.Genre, true)
	payload.Artist = cleanOptional(payload.Artist, false)
	payload.Activity = cleanOptional(payload.Activity, true)
	payload.SearchQuery = strings.TrimSpace(payload.SearchQuery)
	payload.BotResponse = strings.TrimSpace(payload.BotResponse)

	if err := validate.Struct(payload); err != nil {
		return domain.MusicRequest{}, fmt.Errorf("model response violates contract: %w", err)
	}

	return domain.MusicRequest{
		Mood:        domain.Mood(payload.Mood),
		DesiredMood: domain.Mood(payload.DesiredMood),
		Genre:       payload.Genre,
		Artist:      payload.Artist,
		Activity:    payload.Activity,
		RequestType: domain.RequestType(payload.RequestType),
		SearchQuery: payload.SearchQuery,
		BotResponse: payload.BotResponse,
	}, nil
}

// cleanOptional normalizes an optional field: trims whitespace, maps the
// literal "null" to empty, and lowercases enum-like values. Artist names keep
// their casing.
func cleanOptional(s string, lower bool) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
		return ""
	}
	if lower {
		return strings.ToLower(s)
	}
	return s
}

// firstJSONObject returns the first balanced top-level {...} span of text,
// tracking string literals and escapes so braces inside values do not
// unbalance the scan.
func firstJSONObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
