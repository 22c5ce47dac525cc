package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/taskory-api/internal/domain"
	"github.com/phrazzld/taskory-api/internal/store"
)

// Pagination defaults applied when the caller omits or mangles the
// page/limit query parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination describes the page of results returned by ListTasks.
// NextPage and PrevPage are nil at the respective boundaries.
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	TotalPages int  `json:"total_pages"`
	Limit      int  `json:"limit"`
	NextPage   *int `json:"next_page"`
	PrevPage   *int `json:"prev_page"`
}

// TaskPage bundles a page of tasks with its pagination metadata.
type TaskPage struct {
	Tasks      []*domain.Task `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}

// ListTasksParams carries the caller-supplied listing options.
// Zero or negative Page/Limit fall back to the defaults.
type ListTasksParams struct {
	Page   int
	Limit  int
	Search string
}

// TaskService provides task operations scoped to an owning user.
// Ownership enforcement lives in the store layer; the service never
// observes another user's tasks.
type TaskService interface {
	// CreateTask creates a new pending task owned by ownerID.
	// Returns domain validation errors for empty/whitespace names.
	CreateTask(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Task, error)

	// ListTasks returns a page of the owner's tasks, newest first,
	// optionally filtered by a case-insensitive substring of the name.
	ListTasks(ctx context.Context, ownerID uuid.UUID, params ListTasksParams) (*TaskPage, error)

	// UpdateTaskStatus sets the status of an owned task.
	// Returns domain.ErrInvalidTaskStatus for unknown statuses (checked
	// before existence) and store.ErrTaskNotFound for missing or unowned
	// tasks.
	UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)

	// DeleteTask removes an owned task.
	// Returns store.ErrTaskNotFound for missing or unowned tasks.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, NewTaskServiceError("init", "task store cannot be nil", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	name string,
) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, name)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks implements TaskService.ListTasks.
func (s *taskServiceImpl) ListTasks(
	ctx context.Context,
	ownerID uuid.UUID,
	params ListTasksParams,
) (*TaskPage, error) {
	page := params.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filter := store.TaskListFilter{
		Search: params.Search,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	tasks, total, err := s.taskStore.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	return &TaskPage{
		Tasks:      tasks,
		Pagination: buildPagination(total, page, limit),
	}, nil
}

// UpdateTaskStatus implements TaskService.UpdateTaskStatus.
func (s *taskServiceImpl) UpdateTaskStatus(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	status domain.TaskStatus,
) (*domain.Task, error) {
	// Status validity is checked before existence so an invalid status is
	// always a validation error, even for tasks that don't exist.
	if !status.IsValid() {
		return nil, domain.ErrInvalidTaskStatus
	}

	return s.taskStore.UpdateStatus(ctx, ownerID, taskID, status)
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	return s.taskStore.Delete(ctx, ownerID, taskID)
}

// buildPagination computes the page metadata for a listing.
// totalPages is the ceiling of total/limit; next/prev are nil at the
// boundaries, including pages past the end.
func buildPagination(total, page, limit int) Pagination {
	totalPages := (total + limit - 1) / limit

	p := Pagination{
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Limit:      limit,
	}

	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}

	return p
}
