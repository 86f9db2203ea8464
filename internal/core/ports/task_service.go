package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// TaskService defines the ownership-scoped task use cases. The ownerID on
// every call is the authenticated caller's id, taken from the validated
// token and never from the request payload.
type TaskService interface {
	List(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Create(ctx context.Context, ownerID int64, name string, isComplete bool) (*domain.Task, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	Update(ctx context.Context, id, ownerID int64, name string, isComplete bool) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID int64) error
}
