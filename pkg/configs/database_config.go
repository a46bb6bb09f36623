// pkg/configs/database_config.go
package configs

import (
	"fmt"
	"os"
)

// ค่าที่ใช้ได้ของ DB_DRIVER
const (
	DBDriverPostgres = "postgres" // document store ผ่าน network
	DBDriverSQLite   = "sqlite"   // embedded store ในไฟล์เดียว
	DBDriverMemory   = "memory"   // in-process ไม่ persist ข้ามการรัน
)

// DBConfig ค่าตั้งต้นการเชื่อมต่อฐานข้อมูล
type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLitePath ใช้เฉพาะ driver sqlite
	SQLitePath string
}

// LoadDBConfig อ่านค่าจาก environment พร้อม default
func LoadDBConfig() *DBConfig {
	return &DBConfig{
		Driver:     getEnv("DB_DRIVER", DBDriverPostgres),
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       getEnv("DB_PORT", "5432"),
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "testers_notes"),
		SSLMode:    getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "testers_notes.db"),
	}
}

// PostgresDSN สร้าง DSN สำหรับ driver postgres
func (c *DBConfig) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// getEnv อ่านค่า environment variable พร้อมค่า default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
