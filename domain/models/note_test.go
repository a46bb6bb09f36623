package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCategoryIsValid(t *testing.T) {
	for _, category := range NoteCategories {
		assert.True(t, category.IsValid(), "category %s should be valid", category)
	}

	assert.False(t, NoteCategory("").IsValid())
	assert.False(t, NoteCategory("bug").IsValid(), "category is case sensitive")
	assert.False(t, NoteCategory("Fikir").IsValid(), "free text must not pass")
	assert.False(t, NoteCategory(NoteCategoryAll).IsValid(), "the filter sentinel is not a real category")
}

// ชื่อ field ใน JSON ต้องเป็น camelCase ตาม contract ของข้อมูลเดิม
func TestNoteJSONContract(t *testing.T) {
	note := Note{
		ID:          uuid.New(),
		Title:       "Login fails",
		Description: "Steps...",
		Category:    NoteCategoryBug,
		CodeSnippet: "expect(login).toBe(true)",
		TaskLink:    "https://jira.example.com/BUG-1",
		Environment: Environment{Browser: "Chrome 120"},
		Screenshot:  "https://cdn.example.com/shot.png",
		// ScreenshotRef ต้องไม่โผล่ใน JSON
		ScreenshotRef: "testers-note/shot",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	data, err := json.Marshal(note)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"id", "title", "description", "category", "codeSnippet", "taskLink", "environment", "screenshot", "createdAt", "updatedAt"} {
		assert.Contains(t, decoded, key)
	}
	assert.NotContains(t, decoded, "ScreenshotRef")
	assert.NotContains(t, decoded, "screenshotRef")

	env, ok := decoded["environment"].(map[string]interface{})
	require.True(t, ok, "environment should be a nested object")
	assert.Equal(t, "Chrome 120", env["browser"])
	assert.Equal(t, "", env["os"])
	assert.Equal(t, "", env["device"])
}

func TestNoteTemplatesHaveValidCategories(t *testing.T) {
	require.NotEmpty(t, NoteTemplates)

	for _, tmpl := range NoteTemplates {
		assert.True(t, tmpl.Category.IsValid(), "template %s has invalid category %s", tmpl.Name, tmpl.Category)
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.Content)
	}
}
