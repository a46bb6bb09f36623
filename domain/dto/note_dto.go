// domain/dto/note_dto.go
package dto

import "mime/multipart"

// ============ Request DTOs ============

// CreateNoteInput ข้อมูลสำหรับสร้างบันทึกใหม่
// title, description, category เป็น field บังคับ ที่เหลือ default เป็นค่าว่าง
type CreateNoteInput struct {
	Title       string
	Description string
	Category    string
	CodeSnippet string
	TaskLink    string
	Browser     string
	OS          string
	Device      string

	// Screenshot เป็นไฟล์แนบ optional (nil = ไม่มีไฟล์)
	Screenshot *multipart.FileHeader
}

// UpdateNoteInput ข้อมูลสำหรับอัปเดตบันทึก
// field ที่เป็น nil หมายถึงคงค่าเดิมไว้
// ยกเว้น environment (Browser/OS/Device) ที่ถูกสร้างใหม่ทั้งก้อนจาก payload ทุกครั้ง
// field ที่ไม่ส่งมาจะกลายเป็นค่าว่าง - พฤติกรรมนี้คงไว้ตาม contract เดิม
type UpdateNoteInput struct {
	Title       *string
	Description *string
	Category    *string
	CodeSnippet *string
	TaskLink    *string
	Browser     string
	OS          string
	Device      string

	// Screenshot ไฟล์ใหม่ที่จะแทนที่ของเดิม (nil = คงรูปเดิม)
	Screenshot *multipart.FileHeader
}
