// infrastructure/persistence/database/database.go
package database

import (
	"fmt"

	"github.com/thizplus/gofiber-notes-api/pkg/configs"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database ห่อ connection ของ GORM พร้อมฟังก์ชันปิดการเชื่อมต่อ
type Database struct {
	DB *gorm.DB
}

// NewDatabase เปิดการเชื่อมต่อฐานข้อมูลตาม driver ที่กำหนดใน config
// postgres = deployment แบบ server, sqlite = deployment แบบ embedded
func NewDatabase(cfg *configs.DBConfig) (*Database, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case configs.DBDriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case configs.DBDriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	// TranslateError ทำให้ duplicate key ถูกแปลงเป็น gorm.ErrDuplicatedKey
	// เหมือนกันทั้งสอง driver
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return &Database{DB: db}, nil
}

// Close ปิดการเชื่อมต่อฐานข้อมูล
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
