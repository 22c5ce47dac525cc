package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/taskory-api/internal/domain"
	"github.com/phrazzld/taskory-api/internal/store"
)

// MockTaskStore is an in-memory implementation of store.TaskStore.
// Behavior can be overridden per-method via the Fn fields.
type MockTaskStore struct {
	mu    sync.Mutex
	Tasks map[uuid.UUID]*domain.Task

	CreateFn       func(ctx context.Context, task *domain.Task) error
	ListFn         func(ctx context.Context, userID uuid.UUID, filter store.TaskListFilter) ([]*domain.Task, int, error)
	UpdateStatusFn func(ctx context.Context, userID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)
	DeleteFn       func(ctx context.Context, userID, taskID uuid.UUID) error
}

// NewMockTaskStore creates a new MockTaskStore with an empty tasks map.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Ensure MockTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements store.TaskStore.Create.
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if err := task.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.Tasks[task.ID] = task
	return nil
}

// List implements store.TaskStore.List. It applies the same ownership,
// search, ordering, and pagination semantics as the real store: tasks
// belonging to userID whose name contains filter.Search (case-insensitive),
// newest first, sliced by Offset/Limit, with the pre-slice total returned.
func (m *MockTaskStore) List(ctx context.Context, userID uuid.UUID, filter store.TaskListFilter) ([]*domain.Task, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	matched := make([]*domain.Task, 0)
	search := strings.ToLower(filter.Search)
	for _, task := range m.Tasks {
		if task.UserID != userID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(task.Name), search) {
			continue
		}
		matched = append(matched, task)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)

	if filter.Offset >= total {
		return []*domain.Task{}, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus.
func (m *MockTaskStore) UpdateStatus(ctx context.Context, userID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, userID, taskID, status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.Tasks[taskID]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	task.Status = status
	return task, nil
}

// Delete implements store.TaskStore.Delete.
func (m *MockTaskStore) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, taskID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, exists := m.Tasks[taskID]
	if !exists || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, taskID)
	return nil
}
