package ports

import (
	"context"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
)

// TaskRepository persists board tasks.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Save(ctx context.Context, t domain.Task) error
	Delete(ctx context.Context, id string) error
}
