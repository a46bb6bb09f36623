// domain/service/note_service.go
package service

import (
	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// NoteService เป็น interface ที่กำหนดฟังก์ชันของ Note Service
type NoteService interface {
	// CreateNote ตรวจสอบ payload อัปโหลด screenshot (ถ้ามี) แล้วบันทึกโน้ตใหม่
	CreateNote(input *dto.CreateNoteInput) (*models.Note, error)

	// GetNote ดึงบันทึกตาม id
	GetNote(id uuid.UUID) (*models.Note, error)

	// GetNotes ดึงรายการบันทึกเรียงจากใหม่ไปเก่า
	// category เป็นค่าว่างหรือ "all" หมายถึงทุกหมวดหมู่
	GetNotes(category string) ([]*models.Note, error)

	// UpdateNote อัปเดตเฉพาะ field ที่ส่งมา (ยกเว้น environment ที่ถูกสร้างใหม่ทั้งก้อน)
	UpdateNote(id uuid.UUID, input *dto.UpdateNoteInput) (*models.Note, error)

	// DeleteNote ลบบันทึกและสั่งลบ screenshot ที่ storage แบบ best-effort
	DeleteNote(id uuid.UUID) error
}
