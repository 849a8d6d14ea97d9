package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/repository"
)

func setupTaskService(t *testing.T) (*TaskService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewTaskService(repository.NewTaskRepository(db)), db
}

func TestTaskService_Create_NormalizesOptionalFields(t *testing.T) {
	svc, _ := setupTaskService(t)

	task, err := svc.Create(nil, TaskInput{Title: "Just a title"})
	require.NoError(t, err)
	assert.False(t, task.Completed)
	assert.Nil(t, task.Tag)
	assert.Nil(t, task.Priority)
	assert.Nil(t, task.UserID)
}

func TestTaskService_Create_KeepsCustomTag(t *testing.T) {
	svc, _ := setupTaskService(t)

	task, err := svc.Create(nil, TaskInput{Title: "Tagged", Tag: "Gardening", Priority: "Low"})
	require.NoError(t, err)
	require.NotNil(t, task.Tag)
	assert.Equal(t, "Gardening", *task.Tag)
	require.NotNil(t, task.Priority)
	assert.Equal(t, models.PriorityLow, *task.Priority)
}

func TestTaskService_Create_RejectsBlankTitle(t *testing.T) {
	svc, _ := setupTaskService(t)

	_, err := svc.Create(nil, TaskInput{Title: "  "})
	assert.ErrorIs(t, err, ErrTitleRequired)
}

func TestTaskService_Create_RejectsUnknownPriority(t *testing.T) {
	svc, _ := setupTaskService(t)

	_, err := svc.Create(nil, TaskInput{Title: "Task", Priority: "ASAP"})
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestTaskService_List_NewestFirst(t *testing.T) {
	svc, _ := setupTaskService(t)

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(nil, TaskInput{Title: title})
		require.NoError(t, err)
	}

	tasks, err := svc.List(nil)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "three", tasks[0].Title)
	assert.Equal(t, "one", tasks[2].Title)
}

func TestTaskService_Update_OverwritesMutableFieldsOnly(t *testing.T) {
	svc, db := setupTaskService(t)

	owner := uint64(7)
	created, err := svc.Create(&owner, TaskInput{Title: "Before", Tag: "Work"})
	require.NoError(t, err)

	updated, err := svc.Update(&owner, created.ID, TaskInput{
		Title:     "After",
		Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "After", updated.Title)
	assert.True(t, updated.Completed)
	assert.Nil(t, updated.Tag, "empty tag input clears the stored tag")
	require.NotNil(t, updated.UserID)
	assert.Equal(t, owner, *updated.UserID, "owner is immutable")

	var reloaded models.Task
	require.NoError(t, db.First(&reloaded, created.ID).Error)
	assert.Equal(t, "After", reloaded.Title)
}

func TestTaskService_Update_OtherOwnerSeesNotFound(t *testing.T) {
	svc, db := setupTaskService(t)

	ownerA := uint64(1)
	ownerB := uint64(2)
	created, err := svc.Create(&ownerB, TaskInput{Title: "Bob's"})
	require.NoError(t, err)

	_, err = svc.Update(&ownerA, created.ID, TaskInput{Title: "Stolen"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	var reloaded models.Task
	require.NoError(t, db.First(&reloaded, created.ID).Error)
	assert.Equal(t, "Bob's", reloaded.Title)
}

func TestTaskService_Delete_Idempotent(t *testing.T) {
	svc, _ := setupTaskService(t)

	assert.NoError(t, svc.Delete(nil, 12345))
}

func TestTaskService_Delete_ScopedToOwner(t *testing.T) {
	svc, db := setupTaskService(t)

	ownerA := uint64(1)
	ownerB := uint64(2)
	created, err := svc.Create(&ownerB, TaskInput{Title: "Bob's"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(&ownerA, created.ID))

	var count int64
	db.Model(&models.Task{}).Where("id = ?", created.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
