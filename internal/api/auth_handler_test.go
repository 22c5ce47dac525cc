package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskory-api/internal/api"
	"github.com/phrazzld/taskory-api/internal/domain"
	"github.com/phrazzld/taskory-api/internal/mocks"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst))
}

func TestSignup(t *testing.T) {
	t.Parallel()

	t.Run("registers user and returns token", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		handler := api.NewAuthHandler(userStore, &mocks.MockJWTService{Token: "signed-token"}, &mocks.MockPasswordVerifier{}, nil)

		rr := postJSON(t, handler.Signup, "/api/auth/signup", api.SignupRequest{
			Name:     "Ada Lovelace",
			Email:    "Ada@Example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp api.AuthResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, "User registered successfully!", resp.Message)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, "Ada Lovelace", resp.User.Name)
		assert.Equal(t, "ada@example.com", resp.User.Email)

		stored, ok := userStore.Users["ada@example.com"]
		require.True(t, ok)
		assert.Empty(t, stored.Password)
		assert.NotEmpty(t, stored.HashedPassword)

		// The hash must never appear anywhere in the response body.
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{}, nil)

		rr := postJSON(t, handler.Signup, "/api/auth/signup", api.SignupRequest{Email: "ada@example.com"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()
		handler := api.NewAuthHandler(mocks.NewMockUserStore(), &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{}, nil)

		rr := postJSON(t, handler.Signup, "/api/auth/signup", api.SignupRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "short",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()
		userStore := mocks.NewMockUserStore()
		handler := api.NewAuthHandler(userStore, &mocks.MockJWTService{Token: "signed-token"}, &mocks.MockPasswordVerifier{}, nil)

		first := postJSON(t, handler.Signup, "/api/auth/signup", api.SignupRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusCreated, first.Code)

		// Same account, different casing. Normalization makes it a duplicate.
		second := postJSON(t, handler.Signup, "/api/auth/signup", api.SignupRequest{
			Name:     "Ada Again",
			Email:    "ADA@EXAMPLE.COM",
			Password: "password456",
		})
		require.Equal(t, http.StatusConflict, second.Code)

		var resp map[string]interface{}
		decodeBody(t, second, &resp)
		assert.Equal(t, "User already exists with this email.", resp["message"])
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	seedUser := func(t *testing.T) (*mocks.MockUserStore, *domain.User) {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		user, err := domain.NewUser("Ada", "ada@example.com", "password123")
		require.NoError(t, err)
		require.NoError(t, userStore.Create(context.Background(), user))
		return userStore, user
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		userStore, user := seedUser(t)
		handler := api.NewAuthHandler(userStore, &mocks.MockJWTService{Token: "signed-token"}, &mocks.MockPasswordVerifier{ShouldSucceed: true}, nil)

		rr := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "ada@example.com",
			Password: "password123",
		})

		require.Equal(t, http.StatusOK, rr.Code)

		var resp api.AuthResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, "Logged in successfully!", resp.Message)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()
		userStore, _ := seedUser(t)
		handler := api.NewAuthHandler(userStore, &mocks.MockJWTService{Token: "signed-token"}, &mocks.MockPasswordVerifier{ShouldSucceed: false}, nil)

		unknown := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, unknown.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

		var unknownResp, wrongResp map[string]interface{}
		decodeBody(t, unknown, &unknownResp)
		decodeBody(t, wrongPassword, &wrongResp)
		assert.Equal(t, "Invalid credentials.", unknownResp["message"])
		assert.Equal(t, unknownResp["message"], wrongResp["message"])
	})

	t.Run("rejects missing password", func(t *testing.T) {
		t.Parallel()
		userStore, _ := seedUser(t)
		handler := api.NewAuthHandler(userStore, &mocks.MockJWTService{}, &mocks.MockPasswordVerifier{}, nil)

		rr := postJSON(t, handler.Login, "/api/auth/login", api.LoginRequest{Email: "ada@example.com"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
