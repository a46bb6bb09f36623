// domain/service/file_storage_service.go
package service

import "mime/multipart"

// FileUploadResult ผลลัพธ์การอัปโหลดไฟล์จาก storage
type FileUploadResult struct {
	URL      string // URL สำหรับแสดงผล (หรือ data URL กรณี inline storage)
	PublicID string // reference สำหรับสั่งลบ (ค่าว่าง = ไม่มีอะไรให้ลบ)
	Format   string
	Size     int
	Width    int
	Height   int
}

// FileStorageService เป็น interface สำหรับจัดเก็บไฟล์แนบ
// implementation: cloudinary (media host ภายนอก) และ inline (base64 data URL)
type FileStorageService interface {
	UploadImage(file *multipart.FileHeader, folder string) (*FileUploadResult, error)
	DeleteFile(publicID string) error
}
