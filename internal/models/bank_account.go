package models

import (
	"time"

	"gorm.io/gorm"
)

// BankAccount represents a company account payments flow through
type BankAccount struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Label    string   `gorm:"type:varchar(255)" json:"label"`
	IBAN     string   `gorm:"type:varchar(34)" json:"iban"`
	BIC      string   `gorm:"type:varchar(11)" json:"bic"`
	Currency Currency `gorm:"type:varchar(3)" json:"currency"`

	// Relationships
	Payments []Payment `gorm:"foreignKey:BankAccountID" json:"payments,omitempty"`
}
