package handler

import "github.com/taskhive/todo-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// taskRequest is the payload for creating and updating a task. Any owner
// information a client sends is ignored: ownership always comes from the
// bearer token.
type taskRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	IsComplete bool   `json:"isComplete"`
}

// taskResponse is intentionally separate from the domain type so the JSON
// contract is not coupled to internal service changes.
type taskResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:         t.ID,
		Name:       t.Name,
		IsComplete: t.IsComplete,
	}
}

// toTaskListResponse always allocates, so an empty list marshals as []
// rather than null.
func toTaskListResponse(tasks []domain.Task) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i := range tasks {
		out[i] = toTaskResponse(&tasks[i])
	}
	return out
}
