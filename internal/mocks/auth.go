package mocks

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/taskory-api/internal/service/auth"
)

// MockJWTService is a configurable implementation of auth.JWTService.
type MockJWTService struct {
	// Token is returned by GenerateToken when GenerateFn is nil.
	Token string
	// GenerateErr is returned by GenerateToken when GenerateFn is nil.
	GenerateErr error
	// Claims is returned by ValidateToken when ValidateFn is nil.
	Claims *auth.Claims
	// ValidateErr is returned by ValidateToken when ValidateFn is nil.
	ValidateErr error

	GenerateFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

// Ensure MockJWTService implements auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, userID)
	}
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-token-" + userID.String(), nil
}

// ValidateToken implements auth.JWTService.ValidateToken.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return nil, auth.ErrInvalidToken
}

// MockPasswordVerifier is a configurable implementation of
// auth.PasswordVerifier.
type MockPasswordVerifier struct {
	// ShouldSucceed makes Compare report a match when true.
	ShouldSucceed bool
	// Err, when set, is returned by Compare regardless of ShouldSucceed.
	Err error
}

// Ensure MockPasswordVerifier implements auth.PasswordVerifier interface
var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

// Compare implements auth.PasswordVerifier.Compare.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.Err != nil {
		return m.Err
	}
	if m.ShouldSucceed {
		return nil
	}
	return bcrypt.ErrMismatchedHashAndPassword
}
