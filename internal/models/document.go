package models

import (
	"time"

	"gorm.io/gorm"
)

// Document represents metadata for an uploaded file. The blob itself lives in
// external storage; only the reference is kept here.
type Document struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	StudentID   uint   `gorm:"index" json:"student_id"`
	Name        string `gorm:"type:varchar(255)" json:"name"`
	ContentType string `gorm:"type:varchar(100)" json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	StorageKey  string `gorm:"type:varchar(512)" json:"storage_key"`
	UploadedBy  uint   `gorm:"index" json:"uploaded_by"`

	// Relationships
	Student Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
