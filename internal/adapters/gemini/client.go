// Package gemini provides the language-model intent provider. It sends user
// messages to the Gemini API with a fixed instruction contract and parses the
// untrusted reply into a validated MusicRequest.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
)

const defaultModel = "gemini-1.5-flash"

const systemPrompt = `You are a music mood assistant. Analyze the user message and extract music preferences.

PRIORITY ORDER:
1. MOOD (most important) - detect current emotional state
2. DESIRED_MOOD - what mood they want to achieve
3. GENRE - music genre preference
4. ARTIST - specific artist request
5. ACTIVITY - what they're doing (study, workout, sleep, etc.)

Respond in this EXACT JSON format:
{
  "mood": "current mood if detected (sad/happy/anxious/calm/energetic/angry/focused/tired) or null",
  "desiredMood": "target mood they want or null",
  "genre": "genre if mentioned (rnb/pop/rock/hiphop/lofi/jazz/etc) or null",
  "artist": "artist name if mentioned or null",
  "activity": "activity if mentioned (study/workout/sleep/party/etc) or null",
  "requestType": "mood/genre/trending/artist/activity/general",
  "searchQuery": "optimized music search query",
  "botResponse": "friendly response acknowledging their request (max 2 sentences)"
}

Examples:
- "I feel sad" -> mood: "sad", requestType: "mood", botResponse: "I understand you're feeling sad. Let me find some music to help you."
- "Play some RnB" -> genre: "rnb", requestType: "genre", botResponse: "On it! Loading some smooth RnB tracks for you."
- "I'm anxious, need calm music" -> mood: "anxious", desiredMood: "calm", requestType: "mood"
- "Top 50 trending" -> requestType: "trending", searchQuery: "top hits 2024"
- "Workout music" -> activity: "workout", requestType: "activity"

Only return valid JSON, nothing else.`

// Client calls the Gemini API through the official SDK.
type Client struct {
	client *genai.Client
	model  string
}

var _ ports.IntentProvider = (*Client)(nil)

// NewClient constructs a Gemini-backed intent provider. The api key is
// required; model falls back to the default when empty.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

// AnalyzeIntent sends message to the model and returns the validated
// MusicRequest. Any transport, contract, or validation failure is an error;
// the caller decides how to degrade.
func (c *Client) AnalyzeIntent(ctx context.Context, message string) (domain.MusicRequest, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: fmt.Sprintf("User message: %q", message)}},
	}}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return domain.MusicRequest{}, fmt.Errorf("gemini: request failed: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return domain.MusicRequest{}, errors.New("gemini: empty response")
	}

	req, err := ParseMusicRequest(result.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return domain.MusicRequest{}, fmt.Errorf("gemini: %w", err)
	}
	return req, nil
}
