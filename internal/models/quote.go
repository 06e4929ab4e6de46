package models

import (
	"time"

	"gorm.io/gorm"
)

type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "DRAFT"
	QuoteStatusSent      QuoteStatus = "SENT"
	QuoteStatusValidated QuoteStatus = "VALIDATED"
	QuoteStatusRejected  QuoteStatus = "REJECTED"
	QuoteStatusExpired   QuoteStatus = "EXPIRED"
)

// CanTransitionTo reports whether a quote may move from this status to
// target. The lifecycle only moves forward: DRAFT -> SENT, then SENT ->
// VALIDATED, REJECTED or EXPIRED. Terminal statuses allow nothing.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	switch s {
	case QuoteStatusDraft:
		return target == QuoteStatusSent
	case QuoteStatusSent:
		return target == QuoteStatusValidated ||
			target == QuoteStatusRejected ||
			target == QuoteStatusExpired
	}
	return false
}

// Quote represents a priced proposal bundling packs and a payment plan for a
// student. Status moves strictly forward: DRAFT -> SENT -> VALIDATED, with
// REJECTED/EXPIRED reachable from DRAFT and SENT.
type Quote struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	StudentID   uint        `gorm:"index" json:"student_id"`
	Status      QuoteStatus `gorm:"type:varchar(20);default:'DRAFT';index" json:"status"`
	TotalAmount int64       `json:"total_amount"` // minor units
	Currency    Currency    `gorm:"type:varchar(3)" json:"currency"`
	ValidUntil  *time.Time  `json:"valid_until,omitempty"`
	SentAt      *time.Time  `json:"sent_at,omitempty"`
	ValidatedAt *time.Time  `json:"validated_at,omitempty"`

	// Relationships
	Student   Student           `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Items     []QuoteItem       `gorm:"foreignKey:QuoteID" json:"items,omitempty"`
	Schedules []PaymentSchedule `gorm:"foreignKey:QuoteID" json:"schedules,omitempty"`
}

// QuoteItem links a quote to a pack with the price it was quoted at
type QuoteItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	QuoteID   uint  `gorm:"index" json:"quote_id"`
	PackID    uint  `gorm:"index" json:"pack_id"`
	UnitPrice int64 `json:"unit_price"` // minor units, frozen at quote time
	Quantity  int   `gorm:"default:1" json:"quantity"`

	// Relationships
	Pack Pack `gorm:"foreignKey:PackID" json:"pack,omitempty"`
}
