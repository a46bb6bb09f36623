// infrastructure/storage/inline/inline_storage.go
package inline

import (
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/thizplus/gofiber-notes-api/domain/service"
)

// inlineStorage เก็บรูปเป็น data URL (base64) ฝังลงในบันทึกโดยตรง
// ใช้สำหรับ deployment แบบ embedded ที่ไม่มี media host ภายนอก
type inlineStorage struct{}

// NewInlineStorage สร้าง FileStorageService แบบ inline encoding
func NewInlineStorage() service.FileStorageService {
	return &inlineStorage{}
}

// UploadImage อ่านไฟล์แล้ว encode เป็น data URL
func (s *inlineStorage) UploadImage(file *multipart.FileHeader, folder string) (*service.FileUploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	url := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)

	// PublicID เป็นค่าว่าง - ไม่มี resource ภายนอกให้ลบ
	return &service.FileUploadResult{
		URL:    url,
		Format: strings.TrimPrefix(contentType, "image/"),
		Size:   len(data),
	}, nil
}

// DeleteFile ไม่ต้องทำอะไร เพราะข้อมูลรูปอยู่ในตัวบันทึกเอง
func (s *inlineStorage) DeleteFile(publicID string) error {
	return nil
}
