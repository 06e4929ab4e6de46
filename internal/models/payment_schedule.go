package models

import (
	"time"

	"gorm.io/gorm"
)

// Currency is an ISO 4217 code; amounts are stored in minor units (cents)
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// IsValid reports whether the currency is one the platform supports
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyGBP:
		return true
	}
	return false
}

// OwnerType identifies which kind of record a schedule or payment belongs to
type OwnerType string

const (
	OwnerStudent   OwnerType = "student"
	OwnerMentor    OwnerType = "mentor"
	OwnerProfessor OwnerType = "professor"
)

type ScheduleStatus string

const (
	// ScheduleStatusDraft is the state of schedules proposed by a quote that
	// has not been validated yet. Draft schedules are never allocation candidates.
	ScheduleStatusDraft    ScheduleStatus = "DRAFT"
	ScheduleStatusPending  ScheduleStatus = "PENDING"
	ScheduleStatusPartial  ScheduleStatus = "PARTIAL"
	ScheduleStatusPaid     ScheduleStatus = "PAID"
	ScheduleStatusOverdue  ScheduleStatus = "OVERDUE"
	ScheduleStatusCanceled ScheduleStatus = "CANCELED"
)

// PaymentSchedule represents an obligation to pay (or be paid) a fixed amount
// by a due date, in one currency
type PaymentSchedule struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	OwnerType  OwnerType      `gorm:"type:varchar(20);index:idx_schedule_owner,priority:1" json:"owner_type"`
	OwnerID    uint           `gorm:"index:idx_schedule_owner,priority:2" json:"owner_id"`
	QuoteID    *uint          `gorm:"index" json:"quote_id,omitempty"`
	Label      string         `gorm:"type:varchar(255)" json:"label"`
	Amount     int64          `gorm:"not null" json:"amount"` // minor units
	PaidAmount int64          `gorm:"default:0" json:"paid_amount"`
	Currency   Currency       `gorm:"type:varchar(3);not null" json:"currency"`
	DueDate    time.Time      `gorm:"index" json:"due_date"`
	Status     ScheduleStatus `gorm:"type:varchar(20);index" json:"status"`

	// Relationships
	Quote       *Quote              `gorm:"foreignKey:QuoteID" json:"quote,omitempty"`
	Allocations []PaymentAllocation `gorm:"foreignKey:PaymentScheduleID" json:"allocations,omitempty"`
}

// RemainingAmount returns how much of the obligation is still unpaid
func (s PaymentSchedule) RemainingAmount() int64 {
	return s.Amount - s.PaidAmount
}

// IsOpen reports whether the schedule can still receive allocations
func (s PaymentSchedule) IsOpen() bool {
	switch s.Status {
	case ScheduleStatusPending, ScheduleStatusPartial, ScheduleStatusOverdue:
		return true
	}
	return false
}

// DeriveStatus computes the status implied by the paid amount and due date.
// A fully paid schedule is PAID, a partially paid one PARTIAL; an untouched
// schedule is OVERDUE once its due date has passed, otherwise PENDING.
func (s PaymentSchedule) DeriveStatus(now time.Time) ScheduleStatus {
	switch {
	case s.PaidAmount >= s.Amount:
		return ScheduleStatusPaid
	case s.PaidAmount > 0:
		return ScheduleStatusPartial
	case s.DueDate.Before(now):
		return ScheduleStatusOverdue
	default:
		return ScheduleStatusPending
	}
}
