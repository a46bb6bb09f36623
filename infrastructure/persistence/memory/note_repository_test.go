package memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thizplus/gofiber-notes-api/domain/apperrors"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

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
	repo := NewNoteRepository()

	note := newNote("Login fails", models.NoteCategoryBug)
	note.CodeSnippet = "cy.get('#login').click()"
	note.Environment = models.Environment{Browser: "Chrome 120", OS: "macOS"}
	require.NoError(t, repo.Create(note))

	stored, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, note.ID, stored.ID)
	assert.Equal(t, "Login fails", stored.Title)
	assert.Equal(t, models.NoteCategoryBug, stored.Category)
	assert.Equal(t, note.Environment, stored.Environment)
	assert.True(t, stored.CreatedAt.Equal(note.CreatedAt))
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewNoteRepository()

	stored, err := repo.GetByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, stored, "absent id should signal not-found, not error")
}

func TestCreateDuplicateID(t *testing.T) {
	repo := NewNoteRepository()

	note := newNote("first", models.NoteCategoryGeneral)
	require.NoError(t, repo.Create(note))

	dup := newNote("second", models.NoteCategoryGeneral)
	dup.ID = note.ID
	assert.ErrorIs(t, repo.Create(dup), apperrors.ErrDuplicateNote)
}

// การอ่านต้องได้ snapshot - แก้ struct ที่ได้กลับมาแล้วต้องไม่กระทบ store
func TestGetByIDReturnsCopy(t *testing.T) {
	repo := NewNoteRepository()

	note := newNote("immutable", models.NoteCategoryTask)
	require.NoError(t, repo.Create(note))

	first, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	first.Title = "mutated"

	second, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "immutable", second.Title)
}

func TestFindAllOrdering(t *testing.T) {
	repo := NewNoteRepository()

	for _, title := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.Create(newNote(title, models.NoteCategoryGeneral)))
		time.Sleep(5 * time.Millisecond)
	}

	notes, err := repo.FindAll("")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "newest", notes[0].Title)
	assert.Equal(t, "middle", notes[1].Title)
	assert.Equal(t, "oldest", notes[2].Title)

	// อ่านซ้ำโดยไม่มีการเขียน ต้องได้ลำดับเดิม
	again, err := repo.FindAll("")
	require.NoError(t, err)
	require.Len(t, again, 3)
	for i := range notes {
		assert.Equal(t, notes[i].ID, again[i].ID)
	}
}

func TestFindAllFilter(t *testing.T) {
	repo := NewNoteRepository()

	require.NoError(t, repo.Create(newNote("bug 1", models.NoteCategoryBug)))
	require.NoError(t, repo.Create(newNote("task 1", models.NoteCategoryTask)))
	require.NoError(t, repo.Create(newNote("bug 2", models.NoteCategoryBug)))

	bugs, err := repo.FindAll(models.NoteCategoryBug)
	require.NoError(t, err)
	require.Len(t, bugs, 2)
	for _, note := range bugs {
		assert.Equal(t, models.NoteCategoryBug, note.Category)
	}

	all, err := repo.FindAll("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	autos, err := repo.FindAll(models.NoteCategoryAutomation)
	require.NoError(t, err)
	assert.Empty(t, autos)
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	repo := NewNoteRepository()

	note := newNote("before", models.NoteCategoryBug)
	require.NoError(t, repo.Create(note))

	time.Sleep(5 * time.Millisecond)

	note.Title = "after"
	require.NoError(t, repo.Update(note))

	stored, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "after", stored.Title)
	assert.Equal(t, "description of before", stored.Description, "untouched fields keep their value")
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))
}

func TestUpdateNotFound(t *testing.T) {
	repo := NewNoteRepository()

	assert.ErrorIs(t, repo.Update(newNote("ghost", models.NoteCategoryBug)), apperrors.ErrNoteNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	repo := NewNoteRepository()

	note := newNote("doomed", models.NoteCategoryGeneral)
	require.NoError(t, repo.Create(note))

	require.NoError(t, repo.Delete(note.ID))

	stored, err := repo.GetByID(note.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	assert.ErrorIs(t, repo.Delete(note.ID), apperrors.ErrNoteNotFound)
}
