package models

import (
	"time"

	"gorm.io/gorm"
)

// School represents a target institution students apply to
type School struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name    string `gorm:"type:varchar(255)" json:"name"`
	Country string `gorm:"type:varchar(100)" json:"country"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	Website string `gorm:"type:varchar(255)" json:"website"`

	// Relationships
	Programs []Program `gorm:"foreignKey:SchoolID" json:"programs,omitempty"`
}

// Program represents a degree program offered by a school
type Program struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	SchoolID uint   `gorm:"index" json:"school_id"`
	Name     string `gorm:"type:varchar(255)" json:"name"`
	Degree   string `gorm:"type:varchar(100)" json:"degree"` // e.g. "MSc", "MBA"
	Language string `gorm:"type:varchar(50)" json:"language"`

	// Relationships
	School School `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
}
