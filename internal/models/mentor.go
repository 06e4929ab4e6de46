package models

import (
	"time"

	"gorm.io/gorm"
)

// Mentor represents a coach guiding students through their applications
type Mentor struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID     uint   `gorm:"uniqueIndex" json:"user_id"`
	Speciality string `gorm:"type:varchar(255)" json:"speciality"`
	HourlyRate int64  `json:"hourly_rate"` // minor currency units
	Bio        string `gorm:"type:text" json:"bio"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Students []Student `gorm:"foreignKey:MentorID" json:"students,omitempty"`
	Missions []Mission `gorm:"foreignKey:MentorID" json:"missions,omitempty"`
}
