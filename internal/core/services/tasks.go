package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nagare-labs/nagare/backend/internal/core/domain"
	"github.com/nagare-labs/nagare/backend/internal/core/ports"
)

// Tasks manages the task board.
type Tasks struct {
	repo ports.TaskRepository
}

// NewTasks constructs the task service.
func NewTasks(repo ports.TaskRepository) *Tasks {
	return &Tasks{repo: repo}
}

// Create stores a new task, assigning the id and defaulting status and
// priority when absent.
func (s *Tasks) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	if strings.TrimSpace(t.Title) == "" {
		return domain.Task{}, fmt.Errorf("service: task title cannot be empty")
	}
	if t.Status == "" {
		t.Status = domain.TaskPlanned
	}
	if !t.Status.Valid() {
		return domain.Task{}, fmt.Errorf("service: unknown task status %q", t.Status)
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if !t.Priority.Valid() {
		return domain.Task{}, fmt.Errorf("service: unknown task priority %q", t.Priority)
	}

	t.ID = uuid.NewString()
	if err := s.repo.Save(ctx, t); err != nil {
		return domain.Task{}, fmt.Errorf("service: failed to save task: %w", err)
	}
	return t, nil
}

// List returns every task on the board.
func (s *Tasks) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Move drags a task into another board column.
func (s *Tasks) Move(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, error) {
	if !status.Valid() {
		return domain.Task{}, fmt.Errorf("service: unknown task status %q", status)
	}
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, fmt.Errorf("service: failed to load task: %w", err)
	}
	task.Status = status
	if err := s.repo.Save(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("service: failed to save task: %w", err)
	}
	return task, nil
}

// Delete removes a task from the board.
func (s *Tasks) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete task: %w", err)
	}
	return nil
}
