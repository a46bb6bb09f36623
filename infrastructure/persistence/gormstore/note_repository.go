// infrastructure/persistence/gormstore/note_repository.go
package gormstore

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/apperrors"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"gorm.io/gorm"
)

// noteRepository เป็น NoteRepository บน GORM
// ใช้ได้ทั้ง postgres (deployment แบบ server) และ sqlite (deployment แบบ embedded)
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository สร้าง instance ใหม่ของ NoteRepository
func NewNoteRepository(db *gorm.DB) repository.NoteRepository {
	return &noteRepository{db: db}
}

// Create สร้างบันทึกใหม่
func (r *noteRepository) Create(note *models.Note) error {
	err := r.db.Create(note).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrDuplicateNote
	}
	return err
}

// GetByID ดึงข้อมูลบันทึกตาม ID คืน (nil, nil) เมื่อไม่พบ
func (r *noteRepository) GetByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("id = ?", id).First(&note).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// FindAll ดึงรายการบันทึกเรียงจากใหม่ไปเก่า กรองตามหมวดหมู่ถ้าระบุ
func (r *noteRepository) FindAll(category models.NoteCategory) ([]*models.Note, error) {
	var notes []*models.Note

	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}

	return notes, nil
}

// Update อัปเดตข้อมูลบันทึกและ refresh updated_at
func (r *noteRepository) Update(note *models.Note) error {
	note.UpdatedAt = time.Now()
	return r.db.Save(note).Error
}

// Delete ลบบันทึก
func (r *noteRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Note{}).Error
}
