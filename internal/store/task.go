package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskory-api/internal/domain"
)

// TaskListFilter bounds and filters a task listing. All queries are scoped
// to a single owner; Search, when non-empty, is matched as a
// case-insensitive substring of the task name.
type TaskListFilter struct {
	Search string
	Limit  int
	Offset int
}

// TaskStore defines the interface for task data persistence.
// Every read and write is scoped to the owning user; a task that exists
// under a different owner behaves exactly like a missing task.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// List returns the owner's tasks matching the filter, newest first,
	// along with the total number of matching tasks (ignoring limit/offset).
	// Returns an empty slice when nothing matches.
	List(ctx context.Context, userID uuid.UUID, filter TaskListFilter) ([]*domain.Task, int, error)

	// UpdateStatus sets the status of the identified task.
	// Returns ErrTaskNotFound if no task with that ID exists for the owner.
	// Returns the updated task on success.
	UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)

	// Delete removes the identified task.
	// Returns ErrTaskNotFound if no task with that ID exists for the owner.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}
