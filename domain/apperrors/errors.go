// domain/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors สำหรับกรณีที่ caller ต้องแยกแยะด้วย errors.Is
var (
	// ErrNoteNotFound - ไม่พบบันทึกตาม id ที่ระบุ
	ErrNoteNotFound = errors.New("note not found")

	// ErrDuplicateNote - id ซ้ำกับบันทึกที่มีอยู่แล้ว
	// (ไม่ควรเกิดขึ้นถ้าการ generate id ทำงานถูกต้อง)
	ErrDuplicateNote = errors.New("note id already exists")
)

// ValidationError - ข้อมูลใน payload ไม่ครบหรือไม่ถูกต้อง
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// NewValidationError สร้าง ValidationError สำหรับ field ที่ระบุ
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AttachmentError - การอัปโหลดหรือลบไฟล์แนบล้มเหลว
type AttachmentError struct {
	Op  string // "upload" หรือ "release"
	Err error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attachment %s failed: %v", e.Op, e.Err)
}

func (e *AttachmentError) Unwrap() error {
	return e.Err
}
