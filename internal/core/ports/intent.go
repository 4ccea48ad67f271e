package ports

import (
	"context"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// IntentProvider is the primary, language-model-backed analysis path. Its
// output is already validated against the MusicRequest contract; any failure
// (transport, parse, schema) surfaces as an error and the caller falls back
// to the deterministic classifier.
type IntentProvider interface {
	AnalyzeIntent(ctx context.Context, message string) (domain.MusicRequest, error)
}
