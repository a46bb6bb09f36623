// domain/repository/note_repository.go
package repository

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// NoteRepository เป็น interface ของ note store
// มี adapter สองแบบ: gormstore (postgres/sqlite) และ memory (embedded)
type NoteRepository interface {
	// Create บันทึกโน้ตใหม่ คืน apperrors.ErrDuplicateNote ถ้า id ซ้ำ
	Create(note *models.Note) error

	// GetByID ดึงบันทึกตาม id คืน (nil, nil) เมื่อไม่พบ
	GetByID(id uuid.UUID) (*models.Note, error)

	// FindAll ดึงบันทึกทั้งหมดเรียงตาม created_at จากใหม่ไปเก่า
	// ถ้า category ไม่ใช่ค่าว่าง จะกรองเฉพาะหมวดหมู่นั้นแบบ exact match
	FindAll(category models.NoteCategory) ([]*models.Note, error)

	// Update บันทึกค่าทั้ง record และ refresh updated_at เสมอ
	// caller ต้องตรวจสอบว่าบันทึกมีอยู่ก่อนเรียก
	Update(note *models.Note) error

	// Delete ลบบันทึกตาม id
	// caller ต้องตรวจสอบว่าบันทึกมีอยู่ก่อนเรียก
	Delete(id uuid.UUID) error
}
