package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

// TaskHandler handles the per-user task CRUD surface. All routes sit behind
// the Auth middleware; the owner id in every service call comes from the
// validated token.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// List handles GET /tasks. The response is always a JSON array, [] when the
// caller owns nothing.
func (h *TaskHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.List(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskListResponse(tasks))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Create(c.Request().Context(), identity.UserID, req.Name, req.IsComplete)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTaskName) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/tasks/%d", task.ID))
	return c.JSON(http.StatusCreated, toTaskResponse(task))
}

// Get handles GET /tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, ok := taskID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "task not found"})
	}

	task, err := h.service.Get(c.Request().Context(), id, identity.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "task not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Update handles PUT /tasks/:id, replacing name and completion state. An
// absent task and another user's task produce the same 404, so the endpoint
// cannot be used to probe other users' data.
func (h *TaskHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, ok := taskID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "task not found"})
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	task, err := h.service.Update(c.Request().Context(), id, identity.UserID, req.Name, req.IsComplete)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "task not found"})
		case errors.Is(err, domain.ErrEmptyTaskName):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(task))
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	id, ok := taskID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "task not found"})
	}

	if err := h.service.Delete(c.Request().Context(), id, identity.UserID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "task not found"})
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// taskID parses the :id path parameter. Malformed values are reported as a
// miss, not a validation failure: ids are opaque to clients and the 404
// contract must hold whether or not anything could exist at the given id.
func taskID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
