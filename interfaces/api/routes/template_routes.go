// interfaces/api/routes/template_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/interfaces/api/handler"
)

// SetupTemplateRoutes กำหนดเส้นทาง API สำหรับ note template
func SetupTemplateRoutes(router fiber.Router, templateHandler *handler.TemplateHandler) {
	templates := router.Group("/templates")

	templates.Get("/", templateHandler.GetTemplates) // ดึงรายการ template (filter ด้วย ?category=)
}
