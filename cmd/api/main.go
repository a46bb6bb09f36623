package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	db "github.com/thizplus/gofiber-notes-api/infrastructure/persistence/database"
	"github.com/thizplus/gofiber-notes-api/pkg/app"
	"github.com/thizplus/gofiber-notes-api/pkg/configs"
	"github.com/thizplus/gofiber-notes-api/pkg/di"
	"github.com/thizplus/gofiber-notes-api/pkg/logger"
	"gorm.io/gorm"
)

func main() {
	// โหลดไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("ไม่พบไฟล์ .env, ใช้ค่า environment ที่มีอยู่")
	}

	// ตั้งค่า logger
	logger.Init()

	// สร้างการเชื่อมต่อฐานข้อมูล (ข้ามเมื่อใช้ driver memory)
	dbConfig := configs.LoadDBConfig()

	var gormDB *gorm.DB
	var database *db.Database

	if dbConfig.Driver != configs.DBDriverMemory {
		var err error
		database, err = db.NewDatabase(dbConfig)
		if err != nil {
			log.Fatalf("ไม่สามารถเชื่อมต่อกับฐานข้อมูลได้: %v", err)
		}

		// ทำ migration ถ้าจำเป็น
		if err := db.SetupDatabase(database.DB); err != nil {
			log.Fatalf("การ migration ฐานข้อมูลล้มเหลว: %v", err)
		}

		gormDB = database.DB
	} else {
		log.Println("ใช้ note store แบบ in-memory (ข้อมูลไม่ persist ข้ามการรัน)")
	}

	// สร้าง storage service
	storageService, err := configs.SetupStorageService()
	if err != nil {
		log.Fatalf("StorageService error: %v", err)
	}

	// สร้าง container โดยส่ง database และ storageService เข้าไป
	container, err := di.NewContainer(gormDB, storageService)
	if err != nil {
		log.Fatalf("ไม่สามารถสร้าง DI container ได้: %v", err)
	}

	// ตั้งค่าและสร้าง Fiber App
	fiberApp := app.SetupApp(container)

	// จัดการการปิดเซิร์ฟเวอร์อย่างสง่างาม
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}

		log.Printf("เซิร์ฟเวอร์กำลังทำงานที่พอร์ต %s", port)
		if err := fiberApp.Listen(":" + port); err != nil {
			log.Fatalf("ไม่สามารถเริ่มเซิร์ฟเวอร์ได้: %v", err)
		}
	}()

	<-c
	log.Println("กำลังปิดเซิร์ฟเวอร์...")

	if err := fiberApp.Shutdown(); err != nil {
		log.Fatalf("ผิดพลาดในการปิดเซิร์ฟเวอร์: %v", err)
	}

	if database != nil {
		if err := database.Close(); err != nil {
			log.Fatalf("ผิดพลาดในการปิดการเชื่อมต่อฐานข้อมูล: %v", err)
		}
	}

	log.Println("เซิร์ฟเวอร์ถูกปิดอย่างสง่างาม")
}
