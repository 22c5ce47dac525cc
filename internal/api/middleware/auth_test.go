package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskory-api/internal/api/middleware"
	"github.com/phrazzld/taskory-api/internal/api/shared"
	"github.com/phrazzld/taskory-api/internal/mocks"
	"github.com/phrazzld/taskory-api/internal/service/auth"
)

func authRequest(t *testing.T, jwtService auth.JWTService, token string) (*httptest.ResponseRecorder, *uuid.UUID) {
	t.Helper()

	var seenUserID *uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := shared.UserIDFromContext(r.Context()); ok {
			seenUserID = &id
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	rr := httptest.NewRecorder()
	middleware.NewAuthMiddleware(jwtService).Authenticate(next).ServeHTTP(rr, req)
	return rr, seenUserID
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	message, _ := resp["message"].(string)
	return message
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("valid token passes user id downstream", func(t *testing.T) {
		t.Parallel()
		userID := uuid.New()
		jwtService := &mocks.MockJWTService{Claims: &auth.Claims{UserID: userID}}

		rr, seenUserID := authRequest(t, jwtService, "valid-token")
		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, seenUserID)
		assert.Equal(t, userID, *seenUserID)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}

		rr, seenUserID := authRequest(t, jwtService, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "No token, authorization denied.", errorMessage(t, rr))
		assert.Nil(t, seenUserID)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken}

		rr, seenUserID := authRequest(t, jwtService, "garbage")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Token is not valid.", errorMessage(t, rr))
		assert.Nil(t, seenUserID)
	})

	t.Run("expired token gets its own message", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: auth.ErrExpiredToken}

		rr, _ := authRequest(t, jwtService, "expired")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Token expired. Please log in again.", errorMessage(t, rr))
	})

	t.Run("unexpected validation failure is a server error", func(t *testing.T) {
		t.Parallel()
		jwtService := &mocks.MockJWTService{ValidateErr: assert.AnError}

		rr, _ := authRequest(t, jwtService, "whatever")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
