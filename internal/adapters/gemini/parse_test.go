package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

func TestParseMusicRequest(t *testing.T) {
	t.Run("clean JSON object", func(t *testing.T) {
		got, err := ParseMusicRequest(`{
			"mood": "sad",
			"desiredMood": "happy",
			"genre": null,
			"artist": null,
			"activity": null,
			"requestType": "mood",
			"searchQuery": "happy upbeat music",
			"botResponse": "Let's lift that mood!"
		}`)
		require.NoError(t, err)

		assert.Equal(t, domain.MoodSad, got.Mood)
		assert.Equal(t, domain.MoodHappy, got.DesiredMood)
		assert.Equal(t, domain.RequestMood, got.RequestType)
		assert.Equal(t, "happy upbeat music", got.SearchQuery)
		assert.Empty(t, got.Genre)
	})

	t.Run("JSON wrapped in prose and code fences", func(t *testing.T) {
		got, err := ParseMusicRequest("Sure! Here is the analysis:\n```json\n" +
			`{"requestType": "genre", "genre": "Jazz", "searchQuery": "jazz music playlist", "botResponse": "Jazz coming up."}` +
			"\n```\nHope that helps!")
		require.NoError(t, err)

		assert.Equal(t, domain.RequestGenre, got.RequestType)
		assert.Equal(t, "jazz", got.Genre, "enum-like fields are lowercased")
	})

	t.Run("artist keeps its casing", func(t *testing.T) {
		got, err := ParseMusicRequest(`{"requestType": "artist", "artist": " Frank Ocean ", "searchQuery": "Frank Ocean songs", "botResponse": "On it."}`)
		require.NoError(t, err)

		assert.Equal(t, "Frank Ocean", got.Artist)
	})

	t.Run("literal null strings become empty", func(t *testing.T) {
		got, err := ParseMusicRequest(`{"mood": "null", "genre": "None", "requestType": "general", "searchQuery": "music", "botResponse": "Ok."}`)
		require.NoError(t, err)

		assert.Empty(t, got.Mood)
		assert.Empty(t, got.Genre)
	})

	t.Run("braces inside string values stay balanced", func(t *testing.T) {
		got, err := ParseMusicRequest(`{"requestType": "general", "searchQuery": "songs with } in the title", "botResponse": "Curly {brace} songs!"}`)
		require.NoError(t, err)

		assert.Equal(t, "Curly {brace} songs!", got.BotResponse)
	})

	t.Run("no JSON at all", func(t *testing.T) {
		_, err := ParseMusicRequest("I'm sorry, I can't help with that.")
		require.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := ParseMusicRequest(`{"requestType": "mood", "searchQuery": `)
		require.Error(t, err)
	})

	t.Run("unknown request type rejected", func(t *testing.T) {
		_, err := ParseMusicRequest(`{"requestType": "podcast", "searchQuery": "x", "botResponse": "y"}`)
		require.Error(t, err)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		_, err := ParseMusicRequest(`{"requestType": "mood"}`)
		require.Error(t, err)
	})
}

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"leading prose", `result: {"a":1} trailing`, `{"a":1}`, true},
		{"nested objects", `{"a":{"b":2}}`, `{"a":{"b":2}}`, true},
		{"first of two", `{"a":1} {"b":2}`, `{"a":1}`, true},
		{"escaped quote in string", `{"a":"he said \"}\""}`, `{"a":"he said \"}\""}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"stray closing brace", `} {"a":1}`, `{"a":1}`, true},
		{"no object", "plain text", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := firstJSONObject(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
