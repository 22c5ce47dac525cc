package api

import (
	"github.com/google/uuid"

	"github.com/phrazzld/taskory-api/internal/domain"
	"github.com/phrazzld/taskory-api/internal/service"
)

// SignupRequest defines the payload for the user signup endpoint.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UserResponse carries the public user fields. The password hash is never
// part of any response.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResponse defines the successful response for the signup and login
// endpoints.
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse defines the response for the profile endpoint.
type ProfileResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
// Name emptiness (including whitespace-only) is validated by the domain,
// which also trims the name.
type CreateTaskRequest struct {
	Name string `json:"name"`
}

// UpdateTaskStatusRequest defines the payload for the status update endpoint.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskListResponse defines the response for the task listing endpoint.
type TaskListResponse struct {
	Tasks      []*domain.Task     `json:"tasks"`
	Pagination service.Pagination `json:"pagination"`
}

// TaskResponse defines the response for mutations that return a message
// alongside the task.
type TaskResponse struct {
	Message string       `json:"message"`
	Task    *domain.Task `json:"task"`
}

// MessageResponse is the bare acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
