package dto

import (
	"github.com/taskdeck/taskdeck/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
	Priority    string `json:"priority"`
}

// UpdateTaskRequest is the body of PUT /api/tasks. The id travels in the
// body rather than the path; the endpoint is method-dispatched on a
// single route.
type UpdateTaskRequest struct {
	ID          uint64 `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Tag         string `json:"tag"`
	Priority    string `json:"priority"`
}

// DeleteTaskRequest is the body of DELETE /api/tasks.
type DeleteTaskRequest struct {
	ID uint64 `json:"id" binding:"required"`
}
