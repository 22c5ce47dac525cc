package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskory-api/internal/api"
	"github.com/phrazzld/taskory-api/internal/api/shared"
	"github.com/phrazzld/taskory-api/internal/domain"
	"github.com/phrazzld/taskory-api/internal/mocks"
)

func TestGetProfile(t *testing.T) {
	t.Parallel()

	getProfile := func(t *testing.T, userStore *mocks.MockUserStore, userID uuid.UUID) *httptest.ResponseRecorder {
		t.Helper()
		handler := api.NewUserHandler(userStore, nil)
		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req = req.WithContext(shared.WithUserID(req.Context(), userID))
		rr := httptest.NewRecorder()
		handler.GetProfile(rr, req)
		return rr
	}

	t.Run("returns name and email only", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("Ada", "ada@example.com", "password123")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(context.Background(), user))

		rr := getProfile(t, userStore, user.ID)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]interface{}
		decodeBody(t, rr, &resp)
		assert.Equal(t, "Ada", resp["name"])
		assert.Equal(t, "ada@example.com", resp["email"])
		assert.NotContains(t, resp, "id")
		assert.NotContains(t, resp, "password")
	})

	t.Run("vanished user reports not found", func(t *testing.T) {
		t.Parallel()
		rr := getProfile(t, mocks.NewMockUserStore(), uuid.New())
		require.Equal(t, http.StatusNotFound, rr.Code)

		var resp map[string]interface{}
		decodeBody(t, rr, &resp)
		assert.Equal(t, "User not found.", resp["message"])
	})

	t.Run("missing user id in context is unauthorized", func(t *testing.T) {
		t.Parallel()
		handler := api.NewUserHandler(mocks.NewMockUserStore(), nil)
		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		rr := httptest.NewRecorder()
		handler.GetProfile(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
