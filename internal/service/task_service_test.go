package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskory-api/internal/domain"
	"github.com/phrazzld/taskory-api/internal/mocks"
	"github.com/phrazzld/taskory-api/internal/service"
	"github.com/phrazzld/taskory-api/internal/store"
)

func newTaskService(t *testing.T, taskStore store.TaskStore) service.TaskService {
	t.Helper()
	svc, err := service.NewTaskService(taskStore, nil)
	require.NoError(t, err)
	return svc
}

// seedTasks inserts count tasks for ownerID with strictly increasing
// creation times so newest-first ordering is deterministic.
func seedTasks(t *testing.T, taskStore *mocks.MockTaskStore, ownerID uuid.UUID, count int) []*domain.Task {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks := make([]*domain.Task, 0, count)
	for i := 0; i < count; i++ {
		task := &domain.Task{
			ID:        uuid.New(),
			UserID:    ownerID,
			Name:      fmt.Sprintf("Task %02d", i+1),
			Status:    domain.TaskStatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		taskStore.Tasks[task.ID] = task
		tasks = append(tasks, task)
	}
	return tasks
}

func TestNewTaskService(t *testing.T) {
	t.Parallel()

	_, err := service.NewTaskService(nil, nil)
	assert.Error(t, err)
}

func TestCreateTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("creates pending task", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(t, taskStore)

		task, err := svc.CreateTask(context.Background(), ownerID, "Buy groceries")
		require.NoError(t, err)
		assert.Equal(t, ownerID, task.UserID)
		assert.Equal(t, domain.TaskStatusPending, task.Status)
		assert.Contains(t, taskStore.Tasks, task.ID)
	})

	t.Run("rejects whitespace-only name", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(t, taskStore)

		_, err := svc.CreateTask(context.Background(), ownerID, "   ")
		assert.ErrorIs(t, err, domain.ErrTaskNameEmpty)
		assert.Empty(t, taskStore.Tasks)
	})
}

func TestListTasks(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first with metadata", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seeded := seedTasks(t, taskStore, ownerID, 3)
		svc := newTaskService(t, taskStore)

		page, err := svc.ListTasks(context.Background(), ownerID, service.ListTasksParams{})
		require.NoError(t, err)
		require.Len(t, page.Tasks, 3)
		assert.Equal(t, seeded[2].ID, page.Tasks[0].ID)
		assert.Equal(t, seeded[0].ID, page.Tasks[2].ID)

		assert.Equal(t, 3, page.Pagination.Total)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 1, page.Pagination.TotalPages)
		assert.Equal(t, service.DefaultLimit, page.Pagination.Limit)
		assert.Nil(t, page.Pagination.NextPage)
		assert.Nil(t, page.Pagination.PrevPage)
	})

	t.Run("paginates with ceiling total pages", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seedTasks(t, taskStore, ownerID, 7)
		svc := newTaskService(t, taskStore)

		page, err := svc.ListTasks(context.Background(), ownerID, service.ListTasksParams{Page: 2, Limit: 3})
		require.NoError(t, err)
		assert.Len(t, page.Tasks, 3)
		assert.Equal(t, 7, page.Pagination.Total)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		require.NotNil(t, page.Pagination.NextPage)
		assert.Equal(t, 3, *page.Pagination.NextPage)
		require.NotNil(t, page.Pagination.PrevPage)
		assert.Equal(t, 1, *page.Pagination.PrevPage)
	})

	t.Run("last page has no next", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seedTasks(t, taskStore, ownerID, 7)
		svc := newTaskService(t, taskStore)

		page, err := svc.ListTasks(context.Background(), ownerID, service.ListTasksParams{Page: 3, Limit: 3})
		require.NoError(t, err)
		assert.Len(t, page.Tasks, 1)
		assert.Nil(t, page.Pagination.NextPage)
		require.NotNil(t, page.Pagination.PrevPage)
		assert.Equal(t, 2, *page.Pagination.PrevPage)
	})

	t.Run("page past the end returns empty slice", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seedTasks(t, taskStore, ownerID, 2)
		svc := newTaskService(t, taskStore)

		page, err := svc.ListTasks(context.Background(), ownerID, service.ListTasksParams{Page: 5, Limit: 10})
		require.NoError(t, err)
		assert.NotNil(t, page.Tasks)
		assert.Empty(t, page.Tasks)
		assert.Equal(t, 2, page.Pagination.Total)
		assert.Nil(t, page.Pagination.NextPage)
	})

	t.Run("zero and negative params fall back to defaults", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seedTasks(t, taskStore, ownerID, 1)
		svc := newTaskService(t, taskStore)

		page, err := svc.ListTasks(context.Background(), ownerID, service.ListTasksParams{Page: -3, Limit: 0})
		require.NoError(t, err)
		assert.Equal(t, service.DefaultPage, page.Pagination.Page)
		assert.Equal(t, service.DefaultLimit, page.Pagination.Limit)
	})

	t.Run("search filters case-insensitively", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(t, taskStore)

		for _, name := range []string{"Buy Groceries", "Walk dog", "buy stamps"} {
			_, err := svc.CreateTask(context.Background(), ownerID, name)
			require.NoError(t, err)
		}

		page, err := svc.ListTasks(context.Background(), ownerID, service.ListTasksParams{Search: "BUY"})
		require.NoError(t, err)
		assert.Len(t, page.Tasks, 2)
		assert.Equal(t, 2, page.Pagination.Total)
	})

	t.Run("never returns another user's tasks", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		otherID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seedTasks(t, taskStore, otherID, 4)
		svc := newTaskService(t, taskStore)

		page, err := svc.ListTasks(context.Background(), ownerID, service.ListTasksParams{})
		require.NoError(t, err)
		assert.Empty(t, page.Tasks)
		assert.Equal(t, 0, page.Pagination.Total)
		assert.Equal(t, 0, page.Pagination.TotalPages)
	})
}

func TestUpdateTaskStatus(t *testing.T) {
	t.Parallel()

	t.Run("updates owned task", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seeded := seedTasks(t, taskStore, ownerID, 1)
		svc := newTaskService(t, taskStore)

		task, err := svc.UpdateTaskStatus(context.Background(), ownerID, seeded[0].ID, domain.TaskStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, task.Status)
	})

	t.Run("rejects invalid status before existence check", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		storeCalled := false
		taskStore.UpdateStatusFn = func(ctx context.Context, userID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
			storeCalled = true
			return nil, store.ErrTaskNotFound
		}
		svc := newTaskService(t, taskStore)

		_, err := svc.UpdateTaskStatus(context.Background(), uuid.New(), uuid.New(), domain.TaskStatus("done"))
		assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
		assert.False(t, storeCalled)
	})

	t.Run("unowned task reports not found", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seeded := seedTasks(t, taskStore, ownerID, 1)
		svc := newTaskService(t, taskStore)

		_, err := svc.UpdateTaskStatus(context.Background(), uuid.New(), seeded[0].ID, domain.TaskStatusCompleted)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("deletes owned task", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seeded := seedTasks(t, taskStore, ownerID, 1)
		svc := newTaskService(t, taskStore)

		require.NoError(t, svc.DeleteTask(context.Background(), ownerID, seeded[0].ID))
		assert.Empty(t, taskStore.Tasks)
	})

	t.Run("unowned task reports not found", func(t *testing.T) {
		t.Parallel()
		ownerID := uuid.New()
		taskStore := mocks.NewMockTaskStore()
		seeded := seedTasks(t, taskStore, ownerID, 1)
		svc := newTaskService(t, taskStore)

		err := svc.DeleteTask(context.Background(), uuid.New(), seeded[0].ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Len(t, taskStore.Tasks, 1)
	})

	t.Run("missing task reports not found", func(t *testing.T) {
		t.Parallel()
		taskStore := mocks.NewMockTaskStore()
		svc := newTaskService(t, taskStore)

		err := svc.DeleteTask(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
