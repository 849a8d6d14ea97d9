package repository

import (
	"github.com/taskdeck/taskdeck/internal/models"
)

// TaskRepository defines the interface for task data access. Every method
// takes an optional owner: when non-nil the store predicate is composed
// with it, so a caller can never reach another user's rows. A nil owner
// means the unscoped, single-user deployment.
type TaskRepository interface {
	// Create inserts a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID within the owner scope
	FindByID(id uint64, owner *uint64) (*models.Task, error)

	// List retrieves all tasks in the owner scope, newest first (id desc)
	List(owner *uint64) ([]models.Task, error)

	// Update writes back all columns of a previously loaded task
	Update(task *models.Task) error

	// Delete removes the task matching id and owner, returning the number
	// of rows affected
	Delete(id uint64, owner *uint64) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
