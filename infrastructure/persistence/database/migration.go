// infrastructure/persistence/database/migration.go
package database

import (
	"log"

	"github.com/thizplus/gofiber-notes-api/domain/models"
	"gorm.io/gorm"
)

// SetupDatabase ทำการ migrate โมเดลทั้งหมดไปยังฐานข้อมูล
func SetupDatabase(db *gorm.DB) error {
	log.Println("กำลังทำ Auto Migration...")

	if err := db.AutoMigrate(&models.Note{}); err != nil {
		return err
	}

	log.Println("Auto Migration สำเร็จ")
	return nil
}
