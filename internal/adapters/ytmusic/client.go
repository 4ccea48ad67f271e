package ytmusic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
)

const (
	sessionCacheKey   = "ytmusic:session"
	defaultSessionTTL = 6 * time.Hour
	sessionTTLMargin  = 30 * time.Second
)

// Client talks to a YouTube Music search bridge over HTTP. The bridge hands
// out short-lived session tokens which are cached between searches.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxRetries  int
	baseBackoff time.Duration
	sessions    *cache.Cache
}

// compile-time interface assertion
var _ ports.MusicSource = (*Client)(nil)

// NewClient constructs a new YouTube Music bridge client.
func NewClient(httpClient *http.Client, baseURL string, maxRetries int, baseBackoff time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxRetries:  maxRetries,
		baseBackoff: baseBackoff,
		sessions:    cache.New(defaultSessionTTL, 10*time.Minute),
	}
}

// Search runs one catalog search and maps the raw results to domain tracks.
// Entries without a playable video ID are dropped before mapping.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	token, err := c.sessionToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	searchURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ytmusic adapter: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return nil, fmt.Errorf("ytmusic adapter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Session expired early; evict so the next call reauthenticates.
		c.sessions.Delete(sessionCacheKey)
		return nil, fmt.Errorf("ytmusic adapter: session rejected: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ytmusic adapter: status %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("ytmusic adapter: %w", err)
	}
	if sr.Error != "" {
		return nil, fmt.Errorf("ytmusic adapter: upstream error: %s", sr.Error)
	}

	tracks := make([]domain.Track, 0, len(sr.Results))
	seen := make(map[string]struct{}, len(sr.Results))
	for _, result := range sr.Results {
		if !result.usable() {
			continue
		}
		track := mapResultToDomain(result)
		key := dedupKey(track.Title, track.Artist)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		tracks = append(tracks, track)
		if limit > 0 && len(tracks) >= limit {
			break
		}
	}

	return tracks, nil
}

// sessionToken returns a cached bridge session token, creating one if needed.
func (c *Client) sessionToken(ctx context.Context) (string, error) {
	if cached, ok := c.sessions.Get(sessionCacheKey); ok {
		if token, ok := cached.(string); ok && token != "" {
			return token, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session", nil)
	if err != nil {
		return "", fmt.Errorf("ytmusic adapter: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return "", fmt.Errorf("ytmusic adapter: create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("ytmusic adapter: create session: status %d", resp.StatusCode)
	}

	var session sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", fmt.Errorf("ytmusic adapter: create session: %w", err)
	}
	if session.Token == "" {
		return "", fmt.Errorf("ytmusic adapter: create session: empty token")
	}

	ttl := defaultSessionTTL
	if session.ExpiresIn > 0 {
		ttl = time.Duration(session.ExpiresIn) * time.Second
		if ttl > sessionTTLMargin {
			ttl -= sessionTTLMargin
		}
	}
	c.sessions.Set(sessionCacheKey, session.Token, ttl)

	return session.Token, nil
}
