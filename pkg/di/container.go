// pkg/di/container.go
package di

import (
	"github.com/thizplus/gofiber-notes-api/application/serviceimpl"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/infrastructure/persistence/gormstore"
	"github.com/thizplus/gofiber-notes-api/infrastructure/persistence/memory"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"

	"gorm.io/gorm"
)

// Container เก็บ dependencies ทั้งหมดของแอปพลิเคชัน
type Container struct {
	// Repositories
	NoteRepo repository.NoteRepository

	// Services
	StorageService service.FileStorageService
	NoteService    service.NoteService

	// Handlers
	NoteHandler     *handler.NoteHandler
	TemplateHandler *handler.TemplateHandler
}

// NewContainer สร้าง container ใหม่พร้อมกับ dependencies ทั้งหมด
// db เป็น nil เมื่อรันด้วย driver "memory" (deployment แบบไม่มีฐานข้อมูล)
func NewContainer(db *gorm.DB, storageService service.FileStorageService) (*Container, error) {
	container := &Container{
		StorageService: storageService,
	}

	// สร้าง repositories
	if db != nil {
		container.NoteRepo = gormstore.NewNoteRepository(db)
	} else {
		container.NoteRepo = memory.NewNoteRepository()
	}

	// สร้าง services
	container.NoteService = serviceimpl.NewNoteService(
		container.NoteRepo,
		container.StorageService,
	)

	// สร้าง handlers
	container.NoteHandler = handler.NewNoteHandler(container.NoteService)
	container.TemplateHandler = handler.NewTemplateHandler()

	return container, nil
}
