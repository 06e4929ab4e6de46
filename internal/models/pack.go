package models

import (
	"time"

	"gorm.io/gorm"
)

// Pack represents a sellable bundle of consulting services
type Pack struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name        string   `gorm:"type:varchar(255)" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Price       int64    `gorm:"not null" json:"price"` // minor units
	Currency    Currency `gorm:"type:varchar(3);default:'EUR'" json:"currency"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`
}
