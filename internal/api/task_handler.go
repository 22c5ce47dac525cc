package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskory-api/internal/api/shared"
	"github.com/phrazzld/taskory-api/internal/domain"
	"github.com/phrazzld/taskory-api/internal/service"
	"github.com/phrazzld/taskory-api/internal/store"
)

// TaskHandler handles task-related API requests. Every operation is scoped
// to the authenticated user taken from the request context.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With("component", "task_handler"),
	}
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Token is not valid.")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), userID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// ListTasks handles GET /api/tasks.
// Supports ?page, ?limit, and ?search query parameters; page and limit
// fall back to their defaults when absent or non-numeric.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Token is not valid.")
		return
	}

	params := service.ListTasksParams{
		Page:   queryInt(r, "page", service.DefaultPage),
		Limit:  queryInt(r, "limit", service.DefaultLimit),
		Search: r.URL.Query().Get("search"),
	}

	page, err := h.taskService.ListTasks(r.Context(), userID, params)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskListResponse{
		Tasks:      page.Tasks,
		Pagination: page.Pagination,
	})
}

// UpdateTaskStatus handles PATCH /api/tasks/{id}.
// Status validity is checked before existence; a malformed or unowned task
// ID is reported as not-found.
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Token is not valid.")
		return
	}

	var req UpdateTaskStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	status := domain.TaskStatus(req.Status)
	if !status.IsValid() {
		HandleAPIError(w, r, domain.ErrInvalidTaskStatus, "")
		return
	}

	taskID, ok := getPathUUID(r, "id")
	if !ok {
		// A malformed ID can never name an owned task.
		HandleAPIError(w, r, store.ErrTaskNotFound, "")
		return
	}

	task, err := h.taskService.UpdateTaskStatus(r.Context(), userID, taskID, status)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{
		Message: "Task status updated successfully.",
		Task:    task,
	})
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Token is not valid.")
		return
	}

	taskID, ok := getPathUUID(r, "id")
	if !ok {
		HandleAPIError(w, r, store.ErrTaskNotFound, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully.",
	})
}
