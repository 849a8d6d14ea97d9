package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/taskdeck/taskdeck/internal/dto"
	apierrors "github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/middleware"
	"github.com/taskdeck/taskdeck/internal/services"
)

// TaskHandler maps the four task endpoints onto the task service. When
// authEnabled is set, every operation is scoped to the session's user.
type TaskHandler struct {
	taskService *services.TaskService
	authEnabled bool
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, authEnabled bool) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		authEnabled: authEnabled,
	}
}

// owner resolves the session identity for store scoping. In the open
// deployment it is always nil; otherwise an absent session aborts the
// whole operation with 401.
func (h *TaskHandler) owner(c *gin.Context) (*uint64, bool) {
	if !h.authEnabled {
		return nil, true
	}
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return nil, false
	}
	return &userID, true
}

// CreateTask inserts a new, uncompleted task and returns the created row.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(owner, services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Tag:         req.Tag,
		Priority:    req.Priority,
	})
	if err != nil {
		respondTaskError(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// ListTasks returns all tasks visible to the caller, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(owner)
	if err != nil {
		respondTaskError(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask overwrites the mutable fields of a task and returns the
// updated row.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(owner, req.ID, services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Tag:         req.Tag,
		Priority:    req.Priority,
	})
	if err != nil {
		respondTaskError(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task. The confirmation message does not depend on
// whether a row was actually removed.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	owner, ok := h.owner(c)
	if !ok {
		return
	}

	var req dto.DeleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.taskService.Delete(owner, req.ID); err != nil {
		respondTaskError(c, "delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deleted successfully",
	})
}

func respondTaskError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidPriority):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	default:
		log.WithField("op", op).WithError(err).Error("task operation failed")
		apierrors.InternalError(c, "Failed to "+op+" task")
	}
}
