// infrastructure/persistence/memory/note_repository.go
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/apperrors"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
)

// noteRepository เป็น NoteRepository แบบ in-process สำหรับ deployment
// ที่ไม่มี database ภายนอก (และใช้เป็น test double)
// เก็บ record เป็น value ใน map เพื่อให้การอ่านได้ snapshot เสมอ
type noteRepository struct {
	mu    sync.RWMutex
	notes map[uuid.UUID]models.Note
}

// NewNoteRepository สร้าง instance ใหม่ของ NoteRepository แบบ in-memory
func NewNoteRepository() repository.NoteRepository {
	return &noteRepository{notes: make(map[uuid.UUID]models.Note)}
}

// Create สร้างบันทึกใหม่
func (r *noteRepository) Create(note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[note.ID]; ok {
		return apperrors.ErrDuplicateNote
	}

	r.notes[note.ID] = *note
	return nil
}

// GetByID ดึงข้อมูลบันทึกตาม ID คืน (nil, nil) เมื่อไม่พบ
func (r *noteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}

	return &note, nil
}

// FindAll ดึงรายการบันทึกเรียงจากใหม่ไปเก่า กรองตามหมวดหมู่ถ้าระบุ
func (r *noteRepository) FindAll(category models.NoteCategory) ([]*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*models.Note, 0, len(r.notes))
	for _, note := range r.notes {
		if category != "" && note.Category != category {
			continue
		}
		n := note
		notes = append(notes, &n)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes, nil
}

// Update อัปเดตข้อมูลบันทึกและ refresh updated_at
func (r *noteRepository) Update(note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[note.ID]; !ok {
		return apperrors.ErrNoteNotFound
	}

	note.UpdatedAt = time.Now()
	r.notes[note.ID] = *note
	return nil
}

// Delete ลบบันทึก
func (r *noteRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.notes[id]; !ok {
		return apperrors.ErrNoteNotFound
	}

	delete(r.notes, id)
	return nil
}
