package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/repository"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("priority must be one of High, Medium, Low")
	ErrTaskNotFound    = errors.New("task not found")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// TaskInput holds the user-supplied fields of a task. Tag and Priority
// are optional; empty strings are normalized to null before they reach
// the store.
type TaskInput struct {
	Title       string
	Description string
	Completed   bool
	Tag         string
	Priority    string
}

func (in TaskInput) validate() (*string, *models.Priority, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, nil, ErrTitleRequired
	}

	var tag *string
	if in.Tag != "" {
		t := in.Tag
		tag = &t
	}

	var priority *models.Priority
	if in.Priority != "" {
		p := models.Priority(in.Priority)
		if !p.Valid() {
			return nil, nil, ErrInvalidPriority
		}
		priority = &p
	}

	return tag, priority, nil
}

// Create validates the input and inserts a new, uncompleted task owned by
// the given user (nil in the open deployment).
func (s *TaskService) Create(owner *uint64, input TaskInput) (*models.Task, error) {
	tag, priority, err := input.validate()
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		Tag:         tag,
		Priority:    priority,
		UserID:      owner,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List returns every task visible to the owner, newest first.
func (s *TaskService) List(owner *uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update overwrites the mutable fields of the task matching id within the
// owner scope and returns the updated row. ID and owner are immutable; a
// row the owner cannot see yields ErrTaskNotFound with no further detail.
func (s *TaskService) Update(owner *uint64, id uint64, input TaskInput) (*models.Task, error) {
	tag, priority, err := input.validate()
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(id, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Completed = input.Completed
	task.Tag = tag
	task.Priority = priority

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes the task matching id within the owner scope. Deleting an
// id that matches nothing is not an error; the operation is idempotent.
func (s *TaskService) Delete(owner *uint64, id uint64) error {
	if _, err := s.taskRepo.Delete(id, owner); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
