package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task validation errors
var (
	ErrTaskIDEmpty       = errors.New("task ID cannot be empty")
	ErrTaskUserIDEmpty   = errors.New("task user ID cannot be empty")
	ErrTaskNameEmpty     = errors.New("task name cannot be empty")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Valid task statuses. New tasks always start as pending.
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValid reports whether the status is one of the known values.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Task represents a single to-do item owned by a user.
// Ownership is set at creation and never transferred.
type Task struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewTask creates a new pending Task owned by the given user.
// The name is trimmed of surrounding whitespace.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, name string) (*Task, error) {
	task := &Task{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Status:    TaskStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.UserID == uuid.Nil {
		return ErrTaskUserIDEmpty
	}

	if strings.TrimSpace(t.Name) == "" {
		return ErrTaskNameEmpty
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}

	return nil
}
