// interfaces/api/routes/note_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"
)

// SetupNoteRoutes กำหนดเส้นทาง API สำหรับบันทึก
func SetupNoteRoutes(router fiber.Router, noteHandler *handler.NoteHandler) {
	notes := router.Group("/notes")

	// CRUD operations
	notes.Post("/", noteHandler.CreateNote)   // สร้างบันทึกใหม่
	notes.Get("/", noteHandler.GetNotes)      // ดึงรายการบันทึก (filter ด้วย ?category=)

	// Dynamic routes (ต้องมาหลังสุด)
	notes.Get("/:id", noteHandler.GetNote)       // ดึงบันทึกเฉพาะ
	notes.Put("/:id", noteHandler.UpdateNote)    // อัปเดตบันทึก
	notes.Delete("/:id", noteHandler.DeleteNote) // ลบบันทึก
}
