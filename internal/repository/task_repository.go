package repository

import (
	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/database"
	"github.com/taskdeck/taskdeck/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID within the owner scope
func (r *GormTaskRepository) FindByID(id uint64, owner *uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Scopes(database.OwnedBy(owner)).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves all tasks in the owner scope ordered by id descending,
// most recently created first.
func (r *GormTaskRepository) List(owner *uint64) ([]models.Task, error) {
	tasks := []models.Task{}
	err := r.db.
		Scopes(database.OwnedBy(owner)).
		Order("id DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update writes back all columns of a previously loaded task. Nil Tag and
// Priority pointers are persisted as NULL.
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes the task matching id and owner
func (r *GormTaskRepository) Delete(id uint64, owner *uint64) (int64, error) {
	result := r.db.
		Scopes(database.OwnedBy(owner)).
		Delete(&models.Task{}, id)
	return result.RowsAffected, result.Error
}
