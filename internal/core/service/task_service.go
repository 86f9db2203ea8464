package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taskhive/todo-api/internal/api/metrics"
	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TaskService implements ownership-scoped task CRUD. Every method takes the
// caller's user id and passes it through to the repository unchanged; no
// owner information is ever read from a payload.
type TaskService struct {
	tasks  ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, logger: logger}
}

func (s *TaskService) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		// Never nil: an empty list must marshal as [] on the wire.
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, name string, isComplete bool) (*domain.Task, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyTaskName
	}

	created, err := s.tasks.Create(ctx, &domain.Task{Name: name, IsComplete: isComplete, OwnerID: ownerID})
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", ownerID).Msg("failed to create task")
		return nil, err
	}

	metrics.TaskOperationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Int64("task_id", created.ID).Int64("user_id", ownerID).Msg("task created")
	return created, nil
}

func (s *TaskService) Get(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	return s.tasks.FindByIDAndOwner(ctx, id, ownerID)
}

// Update replaces name and completion state of the caller's task. The full
// task is required on every update; there are no partial writes.
func (s *TaskService) Update(ctx context.Context, id, ownerID int64, name string, isComplete bool) (*domain.Task, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyTaskName
	}

	task := &domain.Task{ID: id, Name: name, IsComplete: isComplete, OwnerID: ownerID}
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	metrics.TaskOperationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Int64("task_id", id).Int64("user_id", ownerID).Msg("task updated")
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, id, ownerID int64) error {
	if err := s.tasks.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	metrics.TaskOperationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Int64("task_id", id).Int64("user_id", ownerID).Msg("task deleted")
	return nil
}
