// domain/models/note.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// NoteCategory - หมวดหมู่ของบันทึก (ชุดค่าคงที่ ไม่รับ free text)
type NoteCategory string

const (
	NoteCategoryBug        NoteCategory = "Bug"        // รายงานข้อบกพร่อง
	NoteCategoryTask       NoteCategory = "Task"       // test case / งานทดสอบ
	NoteCategoryAutomation NoteCategory = "Automation" // บันทึกเกี่ยวกับ automation
	NoteCategoryGeneral    NoteCategory = "General"    // บันทึกทั่วไป
)

// NoteCategoryAll - ค่า sentinel สำหรับการ filter หมายถึงทุกหมวดหมู่
const NoteCategoryAll = "all"

// NoteCategories - รายการหมวดหมู่ทั้งหมดที่อนุญาต
var NoteCategories = []NoteCategory{
	NoteCategoryBug,
	NoteCategoryTask,
	NoteCategoryAutomation,
	NoteCategoryGeneral,
}

// IsValid ตรวจสอบว่าหมวดหมู่อยู่ในชุดค่าที่กำหนด
func (c NoteCategory) IsValid() bool {
	switch c {
	case NoteCategoryBug, NoteCategoryTask, NoteCategoryAutomation, NoteCategoryGeneral:
		return true
	}
	return false
}

// Environment - ข้อมูลสภาพแวดล้อมที่พบปัญหา (ทุก field เป็น optional)
type Environment struct {
	Browser string `json:"browser" gorm:"type:varchar(100)"`
	OS      string `json:"os" gorm:"type:varchar(100)"`
	Device  string `json:"device" gorm:"type:varchar(100)"`
}

// Note - บันทึกของ tester (bug report, test case, automation note)
// ชื่อ field ใน JSON เป็น camelCase ตาม contract ของข้อมูลที่เคยบันทึกไว้
type Note struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primary_key"`
	Title       string       `json:"title" gorm:"type:varchar(255);not null"`
	Description string       `json:"description" gorm:"type:text;not null"`
	Category    NoteCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	CodeSnippet string       `json:"codeSnippet" gorm:"type:text"`
	TaskLink    string       `json:"taskLink" gorm:"type:varchar(512)"`
	Environment Environment  `json:"environment" gorm:"embedded;embeddedPrefix:environment_"`

	// Screenshot คือ URL สำหรับแสดงผล ส่วน ScreenshotRef คือ reference
	// ที่ใช้สั่งลบไฟล์ที่ storage (เก็บแยกกัน ไม่ parse ออกจาก URL)
	Screenshot    string `json:"screenshot" gorm:"type:varchar(512)"`
	ScreenshotRef string `json:"-" gorm:"type:varchar(255)"`

	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName - ระบุชื่อตารางใน database
func (Note) TableName() string {
	return "notes"
}
