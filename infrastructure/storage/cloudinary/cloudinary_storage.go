// infrastructure/storage/cloudinary/cloudinary_storage.go
package cloudinary

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/thizplus/gofiber-notes-api/domain/service"
)

// CloudinaryConfig ค่าตั้งต้นสำหรับเชื่อมต่อ Cloudinary
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadFolder string
}

// cloudinaryStorage จัดการการเก็บไฟล์ด้วย Cloudinary
type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	ctx    context.Context
	config *CloudinaryConfig
}

// NewCloudinaryStorage สร้าง FileStorageService ที่ใช้ Cloudinary
func NewCloudinaryStorage(config *CloudinaryConfig) (service.FileStorageService, error) {
	ctx := context.Background()

	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, err
	}

	return &cloudinaryStorage{
		cld:    cld,
		ctx:    ctx,
		config: config,
	}, nil
}

// ฟังก์ชันช่วยสร้าง pointer to bool
func boolPtr(b bool) *bool {
	return &b
}

// UploadImage อัปโหลดรูปภาพไปยัง Cloudinary
func (c *cloudinaryStorage) UploadImage(file *multipart.FileHeader, folder string) (*service.FileUploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if folder == "" {
		folder = c.config.UploadFolder
	}

	uploadParams := uploader.UploadParams{
		Folder:         folder,
		UseFilename:    boolPtr(true),
		UniqueFilename: boolPtr(true),
		ResourceType:   "image",
		Transformation: "q_auto:good",
	}

	// จำกัดเวลาอัปโหลด - ถ้าเกินกำหนดจะคืน error ให้ caller จัดการ
	ctx, cancel := context.WithTimeout(c.ctx, 30*time.Second)
	defer cancel()

	result, err := c.cld.Upload.Upload(ctx, src, uploadParams)
	if err != nil {
		return nil, err
	}

	// PublicID คือ reference สำหรับสั่งลบภายหลัง
	return &service.FileUploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Format:   result.Format,
		Size:     int(result.Bytes),
		Width:    result.Width,
		Height:   result.Height,
	}, nil
}

// DeleteFile ลบไฟล์จาก Cloudinary ตาม public id
func (c *cloudinaryStorage) DeleteFile(publicID string) error {
	ctx, cancel := context.WithTimeout(c.ctx, 10*time.Second)
	defer cancel()

	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return err
	}

	return nil
}
