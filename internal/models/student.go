package models

import (
	"time"

	"gorm.io/gorm"
)

// Student represents a consulting client applying to schools abroad
type Student struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID      uint       `gorm:"uniqueIndex" json:"user_id"`
	Nationality string     `gorm:"type:varchar(100)" json:"nationality"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	MentorID    *uint      `gorm:"index" json:"mentor_id,omitempty"`
	ProgramID   *uint      `gorm:"index" json:"program_id,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes"`

	// Relationships
	User    User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Mentor  *Mentor  `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
	Quotes  []Quote  `gorm:"foreignKey:StudentID" json:"quotes,omitempty"`
}
