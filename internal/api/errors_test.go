package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/taskory-api/internal/api"
	"github.com/phrazzld/taskory-api/internal/domain"
	"github.com/phrazzld/taskory-api/internal/service/auth"
	"github.com/phrazzld/taskory-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"empty task name", domain.ErrTaskNameEmpty, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidTaskStatus, http.StatusBadRequest},
		{"invalid email", domain.ErrInvalidEmail, http.StatusBadRequest},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"task not found", store.ErrTaskNotFound, "Task not found or unauthorized."},
		{"email exists", store.ErrEmailExists, "User already exists with this email."},
		{"user not found", store.ErrUserNotFound, "User not found."},
		{"empty task name", domain.ErrTaskNameEmpty, "Task name is required."},
		{"invalid status", domain.ErrInvalidTaskStatus, `Invalid status provided. Must be "pending" or "completed".`},
		{"expired token", auth.ErrExpiredToken, "Token expired. Please log in again."},
		{"nil error", nil, "An unexpected error occurred"},
		{"unknown error", assert.AnError, "An unexpected error occurred"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, api.GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessageNeverLeaksInternals(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("pq: connect to postgres://admin:hunter2@db:5432 failed")
	message := api.GetSafeErrorMessage(err)
	assert.NotContains(t, message, "hunter2")
	assert.NotContains(t, message, "postgres://")
}
