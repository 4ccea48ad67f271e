package ports

import (
	"context"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// MusicSource searches an external track catalog. Implementations may return
// fewer tracks than limit; returning an error or zero usable tracks makes the
// catalog service fall back to its static library.
type MusicSource interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Track, error)
}
