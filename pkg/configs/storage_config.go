// pkg/configs/storage_config.go
package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/infrastructure/storage/cloudinary"
	"github.com/thizplus/gofiber-notes-api/infrastructure/storage/inline"
)

// SetupStorageService สร้าง FileStorageService ตาม environment
func SetupStorageService() (service.FileStorageService, error) {
	storageType := os.Getenv("STORAGE_TYPE")

	// Default to cloudinary if not specified
	if storageType == "" {
		storageType = "cloudinary"
	}

	log.Printf("Setting up storage service with type: %s", storageType)

	switch storageType {
	case "cloudinary":
		return cloudinary.NewCloudinaryStorage(&cloudinary.CloudinaryConfig{
			CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
			APISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
			UploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "testers-note"),
		})

	case "inline":
		// เก็บรูปเป็น base64 ฝังในบันทึก สำหรับ deployment แบบ embedded
		return inline.NewInlineStorage(), nil

	default:
		return nil, fmt.Errorf("unsupported storage type: %s (supported: cloudinary, inline)", storageType)
	}
}
