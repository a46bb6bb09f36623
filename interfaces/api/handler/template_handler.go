// interfaces/api/handler/template_handler.go
package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/domain/models"
)

// TemplateHandler ให้บริการ note template แบบ read-only
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// GetTemplates ดึงรายการ template ทั้งหมด
// รองรับ query parameter:
// - category: กรองเฉพาะ template ของหมวดหมู่นั้น
func (h *TemplateHandler) GetTemplates(c *fiber.Ctx) error {
	category := c.Query("category")

	templates := models.NoteTemplates
	if category != "" && category != models.NoteCategoryAll {
		filtered := make([]models.NoteTemplate, 0, len(templates))
		for _, tmpl := range templates {
			if tmpl.Category == models.NoteCategory(category) {
				filtered = append(filtered, tmpl)
			}
		}
		templates = filtered
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    templates,
	})
}
