// interfaces/api/handler/note_handler.go
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/thizplus/gofiber-notes-api/domain/apperrors"
	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/pkg/utils"
)

const (
	// MaxScreenshotSize is 5MB
	MaxScreenshotSize = 5 * 1024 * 1024
)

type NoteHandler struct {
	noteService service.NoteService
}

func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// CreateNote สร้างบันทึกใหม่ (รองรับทั้ง JSON และ multipart form)
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title" form:"title"`
		Description string `json:"description" form:"description"`
		Category    string `json:"category" form:"category"`
		CodeSnippet string `json:"codeSnippet" form:"codeSnippet"`
		TaskLink    string `json:"taskLink" form:"taskLink"`
		Browser     string `json:"browser" form:"browser"`
		OS          string `json:"os" form:"os"`
		Device      string `json:"device" form:"device"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	// screenshot เป็น optional - error จาก FormFile หมายถึงไม่มีไฟล์แนบมา
	file, err := c.FormFile("screenshot")
	if err != nil {
		file = nil
	}
	if file != nil && file.Size > MaxScreenshotSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Screenshot exceeds the 5MB size limit",
		})
	}

	note, err := h.noteService.CreateNote(&dto.CreateNoteInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		CodeSnippet: input.CodeSnippet,
		TaskLink:    input.TaskLink,
		Browser:     input.Browser,
		OS:          input.OS,
		Device:      input.Device,
		Screenshot:  file,
	})
	if err != nil {
		return noteErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Note created successfully",
		"data":    note,
	})
}

// GetNote ดึงข้อมูลบันทึก
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	note, err := h.noteService.GetNote(noteID)
	if err != nil {
		return noteErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    note,
	})
}

// GetNotes ดึงรายการบันทึกทั้งหมด
// รองรับ query parameter:
// - category: กรองเฉพาะหมวดหมู่นั้น ("all" หรือไม่ส่งมา = ทุกหมวดหมู่)
func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	category := c.Query("category")

	notes, err := h.noteService.GetNotes(category)
	if err != nil {
		return noteErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notes,
	})
}

// UpdateNote อัปเดตบันทึก (field ที่ไม่ส่งมาจะคงค่าเดิม ยกเว้น environment)
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	var input struct {
		Title       *string `json:"title" form:"title"`
		Description *string `json:"description" form:"description"`
		Category    *string `json:"category" form:"category"`
		CodeSnippet *string `json:"codeSnippet" form:"codeSnippet"`
		TaskLink    *string `json:"taskLink" form:"taskLink"`
		Browser     string  `json:"browser" form:"browser"`
		OS          string  `json:"os" form:"os"`
		Device      string  `json:"device" form:"device"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
	}

	file, err := c.FormFile("screenshot")
	if err != nil {
		file = nil
	}
	if file != nil && file.Size > MaxScreenshotSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Screenshot exceeds the 5MB size limit",
		})
	}

	note, err := h.noteService.UpdateNote(noteID, &dto.UpdateNoteInput{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		CodeSnippet: input.CodeSnippet,
		TaskLink:    input.TaskLink,
		Browser:     input.Browser,
		OS:          input.OS,
		Device:      input.Device,
		Screenshot:  file,
	})
	if err != nil {
		return noteErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note updated successfully",
		"data":    note,
	})
}

// DeleteNote ลบบันทึก
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	noteID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid note ID: " + err.Error(),
		})
	}

	if err := h.noteService.DeleteNote(noteID); err != nil {
		return noteErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Note deleted successfully",
	})
}

// noteErrorResponse แปลง error จาก service เป็น HTTP status ที่เหมาะสม
func noteErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *apperrors.ValidationError
	var attachmentErr *apperrors.AttachmentError

	statusCode := fiber.StatusInternalServerError
	switch {
	case errors.As(err, &validationErr):
		statusCode = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrNoteNotFound):
		statusCode = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicateNote):
		statusCode = fiber.StatusConflict
	case errors.As(err, &attachmentErr):
		statusCode = fiber.StatusBadGateway
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
