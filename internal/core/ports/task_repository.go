package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// TaskRepository defines persistence operations for task items.
// Every single-task operation filters by id AND owner in one query, so a
// caller can never distinguish "absent" from "owned by someone else".
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	// Update overwrites name and completion state of the task matching both
	// id and owner; domain.ErrTaskNotFound when nothing matched.
	Update(ctx context.Context, task *domain.Task) error
	// Delete removes the task matching both id and owner;
	// domain.ErrTaskNotFound when nothing matched.
	Delete(ctx context.Context, id, ownerID int64) error
}
