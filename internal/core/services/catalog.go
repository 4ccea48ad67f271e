package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
)

// Catalog resolves queries against the external music source, falling back to
// the static library when the source errors or returns nothing usable.
// Search never fails and never returns an empty slice for a non-zero limit.
type Catalog struct {
	source ports.MusicSource
	log    *zap.Logger
}

// NewCatalog constructs a Catalog. source may be nil; every search then
// answers from the static library.
func NewCatalog(source ports.MusicSource, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{source: source, log: log}
}

// Search returns at most limit playable tracks for query.
func (c *Catalog) Search(ctx context.Context, query string, limit int) []domain.Track {
	if limit <= 0 {
		limit = generalLimit
	}

	if c.source != nil {
		tracks, err := c.source.Search(ctx, query, limit)
		if err != nil {
			c.log.Warn("catalog source failed, using static library",
				zap.String("module", "catalog"), zap.String("query", query), zap.Error(err))
		} else {
			usable := tracks[:0:0]
			for _, t := range tracks {
				if t.Playable() {
					usable = append(usable, t)
				}
			}
			if len(usable) > 0 {
				if len(usable) > limit {
					usable = usable[:limit]
				}
				return usable
			}
			c.log.Warn("catalog source returned no usable tracks, using static library",
				zap.String("module", "catalog"), zap.String("query", query))
		}
	}

	return fallbackTracks(query, limit)
}
