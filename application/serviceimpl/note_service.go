// application/serviceimpl/note_service.go
package serviceimpl

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thizplus/gofiber-notes-api/domain/apperrors"
	"github.com/thizplus/gofiber-notes-api/domain/dto"
	"github.com/thizplus/gofiber-notes-api/domain/models"
	"github.com/thizplus/gofiber-notes-api/domain/repository"
	"github.com/thizplus/gofiber-notes-api/domain/service"
	"github.com/thizplus/gofiber-notes-api/pkg/logger"
)

// screenshotFolder - โฟลเดอร์บน storage สำหรับเก็บ screenshot ทั้งหมด
const screenshotFolder = "testers-note"

type noteService struct {
	noteRepo       repository.NoteRepository
	storageService service.FileStorageService
}

// NewNoteService สร้าง instance ใหม่ของ NoteService
func NewNoteService(noteRepo repository.NoteRepository, storageService service.FileStorageService) service.NoteService {
	return &noteService{
		noteRepo:       noteRepo,
		storageService: storageService,
	}
}

// CreateNote สร้างบันทึกใหม่
func (s *noteService) CreateNote(input *dto.CreateNoteInput) (*models.Note, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("description", "description is required")
	}

	category := models.NoteCategory(input.Category)
	if !category.IsValid() {
		return nil, apperrors.NewValidationError("category", "category must be one of Bug, Task, Automation, General")
	}

	now := time.Now()
	note := &models.Note{
		ID:          uuid.New(),
		Title:       title,
		Description: input.Description,
		Category:    category,
		CodeSnippet: input.CodeSnippet,
		TaskLink:    input.TaskLink,
		Environment: models.Environment{
			Browser: input.Browser,
			OS:      input.OS,
			Device:  input.Device,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// อัปโหลด screenshot ก่อน persist - ถ้าอัปโหลดไม่สำเร็จจะไม่บันทึกอะไรเลย
	if input.Screenshot != nil {
		result, err := s.storageService.UploadImage(input.Screenshot, screenshotFolder)
		if err != nil {
			return nil, &apperrors.AttachmentError{Op: "upload", Err: err}
		}
		note.Screenshot = result.URL
		note.ScreenshotRef = result.PublicID
	}

	if err := s.noteRepo.Create(note); err != nil {
		// บันทึกไม่สำเร็จ ลบไฟล์ที่เพิ่งอัปโหลดทิ้งเพื่อไม่ให้ค้างที่ storage
		if note.ScreenshotRef != "" {
			s.releaseScreenshot(note.ScreenshotRef)
		}
		return nil, err
	}

	return note, nil
}

// GetNote ดึงข้อมูลบันทึก
func (s *noteService) GetNote(id uuid.UUID) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperrors.ErrNoteNotFound
	}

	return note, nil
}

// GetNotes ดึงรายการบันทึก (category ว่างหรือ "all" = ทุกหมวดหมู่)
func (s *noteService) GetNotes(category string) ([]*models.Note, error) {
	if category == "" || category == models.NoteCategoryAll {
		return s.noteRepo.FindAll("")
	}

	return s.noteRepo.FindAll(models.NoteCategory(category))
}

// UpdateNote อัปเดตบันทึก
func (s *noteService) UpdateNote(id uuid.UUID, input *dto.UpdateNoteInput) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperrors.ErrNoteNotFound
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, apperrors.NewValidationError("title", "title cannot be empty")
		}
		note.Title = title
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, apperrors.NewValidationError("description", "description cannot be empty")
		}
		note.Description = *input.Description
	}
	if input.Category != nil {
		category := models.NoteCategory(*input.Category)
		if !category.IsValid() {
			return nil, apperrors.NewValidationError("category", "category must be one of Bug, Task, Automation, General")
		}
		note.Category = category
	}
	if input.CodeSnippet != nil {
		note.CodeSnippet = *input.CodeSnippet
	}
	if input.TaskLink != nil {
		note.TaskLink = *input.TaskLink
	}

	// environment ถูกสร้างใหม่ทั้งก้อนจาก payload ทุกครั้ง
	// field ที่ไม่ส่งมาจะกลายเป็นค่าว่าง (contract เดิมของระบบ)
	note.Environment = models.Environment{
		Browser: input.Browser,
		OS:      input.OS,
		Device:  input.Device,
	}

	// ถ้ามีไฟล์ใหม่ อัปโหลดก่อนบันทึก แล้วค่อยลบไฟล์เก่าหลังบันทึกสำเร็จ
	oldRef := ""
	if input.Screenshot != nil {
		result, err := s.storageService.UploadImage(input.Screenshot, screenshotFolder)
		if err != nil {
			return nil, &apperrors.AttachmentError{Op: "upload", Err: err}
		}
		oldRef = note.ScreenshotRef
		note.Screenshot = result.URL
		note.ScreenshotRef = result.PublicID
	}

	if err := s.noteRepo.Update(note); err != nil {
		// อัปเดตไม่สำเร็จ ไฟล์ใหม่ไม่ถูกอ้างถึง ลบทิ้งที่ storage
		if input.Screenshot != nil && note.ScreenshotRef != "" {
			s.releaseScreenshot(note.ScreenshotRef)
		}
		return nil, err
	}

	if oldRef != "" {
		s.releaseScreenshot(oldRef)
	}

	return note, nil
}

// DeleteNote ลบบันทึก
func (s *noteService) DeleteNote(id uuid.UUID) error {
	note, err := s.noteRepo.GetByID(id)
	if err != nil {
		return err
	}
	if note == nil {
		return apperrors.ErrNoteNotFound
	}

	if err := s.noteRepo.Delete(id); err != nil {
		return err
	}

	// บันทึกถูกลบไปแล้ว การลบไฟล์เป็น best-effort เท่านั้น
	if note.ScreenshotRef != "" {
		s.releaseScreenshot(note.ScreenshotRef)
	}

	return nil
}

// releaseScreenshot สั่งลบไฟล์ที่ storage ถ้าลบไม่สำเร็จจะ log แล้วทำงานต่อ
func (s *noteService) releaseScreenshot(ref string) {
	if err := s.storageService.DeleteFile(ref); err != nil {
		logger.Sugar.Warnw("failed to release screenshot from storage",
			"ref", ref,
			"error", err,
		)
	}
}
