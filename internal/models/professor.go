package models

import (
	"time"

	"gorm.io/gorm"
)

// Professor represents a subject teacher giving prep courses to students
type Professor struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID     uint   `gorm:"uniqueIndex" json:"user_id"`
	Subject    string `gorm:"type:varchar(255)" json:"subject"`
	HourlyRate int64  `json:"hourly_rate"` // minor currency units

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Missions []Mission `gorm:"foreignKey:ProfessorID" json:"missions,omitempty"`
}
