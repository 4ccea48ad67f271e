package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
)

// Analyzer turns free user text into a MusicRequest. Analyze never fails:
// when the language-model provider is absent or errors, the deterministic
// keyword classifier answers instead.
type Analyzer struct {
	provider ports.IntentProvider
	log      *zap.Logger
}

// NewAnalyzer constructs an Analyzer. provider may be nil, in which case only
// the fallback path runs.
func NewAnalyzer(provider ports.IntentProvider, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{provider: provider, log: log}
}

// Analyze resolves text to a valid MusicRequest.
func (a *Analyzer) Analyze(ctx context.Context, text string) domain.MusicRequest {
	trimmed := strings.TrimSpace(text)

	if a.provider != nil && trimmed != "" {
		req, err := a.provider.AnalyzeIntent(ctx, trimmed)
		if err == nil {
			return req
		}
		a.log.Warn("intent provider failed, falling back to keyword analysis",
			zap.String("module", "analyzer"), zap.Error(err))
	}

	return fallbackAnalysis(trimmed)
}
