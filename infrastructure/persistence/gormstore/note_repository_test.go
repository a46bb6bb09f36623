package gormstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thizplus/gofiber-notes-api/domain/apperrors"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// เปิดฐานข้อมูล sqlite ชั่วคราวสำหรับแต่ละ test
func newTestRepo(t *testing.T) repository.NoteRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "notes.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Note{}))

	return NewNoteRepository(db)
}

func newNote(title string, category models.NoteCategory) *models.Note {
	now := time.Now()
	return &models.Note{
		ID:          uuid.New(),
		Title:       title,
		Description: "description of " + title,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	repo := newTestRepo(t)

	note := newNote("Login fails", models.NoteCategoryBug)
	note.Environment = models.Environment{Browser: "Chrome 120", OS: "macOS", Device: "MacBook"}
	note.Screenshot = "https://cdn.example.com/shot.png"
	note.ScreenshotRef = "testers-note/shot"
	require.NoError(t, repo.Create(note))

	stored, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, note.ID, stored.ID)
	assert.Equal(t, "Login fails", stored.Title)
	assert.Equal(t, note.Environment, stored.Environment)
	assert.Equal(t, "testers-note/shot", stored.ScreenshotRef)
	assert.WithinDuration(t, note.CreatedAt, stored.CreatedAt, time.Second)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t)

	stored, err := repo.GetByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestCreateDuplicateID(t *testing.T) {
	repo := newTestRepo(t)

	note := newNote("first", models.NoteCategoryGeneral)
	require.NoError(t, repo.Create(note))

	dup := newNote("second", models.NoteCategoryGeneral)
	dup.ID = note.ID
	assert.ErrorIs(t, repo.Create(dup), apperrors.ErrDuplicateNote)
}

func TestFindAllOrderingAndFilter(t *testing.T) {
	repo := newTestRepo(t)

	for _, spec := range []struct {
		title    string
		category models.NoteCategory
	}{
		{"bug 1", models.NoteCategoryBug},
		{"task 1", models.NoteCategoryTask},
		{"bug 2", models.NoteCategoryBug},
	} {
		require.NoError(t, repo.Create(newNote(spec.title, spec.category)))
		time.Sleep(5 * time.Millisecond)
	}

	all, err := repo.FindAll("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "bug 2", all[0].Title, "newest first")
	assert.Equal(t, "bug 1", all[2].Title)

	bugs, err := repo.FindAll(models.NoteCategoryBug)
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	for _, note := range bugs {
		assert.Equal(t, models.NoteCategoryBug, note.Category)
	}
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	repo := newTestRepo(t)

	note := newNote("before", models.NoteCategoryBug)
	require.NoError(t, repo.Create(note))

	time.Sleep(5 * time.Millisecond)

	note.Title = "after"
	require.NoError(t, repo.Update(note))

	stored, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "after", stored.Title)
	assert.Equal(t, "description of before", stored.Description)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))
}

func TestDeleteThenGet(t *testing.T) {
	repo := newTestRepo(t)

	note := newNote("doomed", models.NoteCategoryGeneral)
	require.NoError(t, repo.Create(note))

	require.NoError(t, repo.Delete(note.ID))

	stored, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
