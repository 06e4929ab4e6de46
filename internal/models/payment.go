package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentDirection distinguishes money received from money sent out
type PaymentDirection string

const (
	PaymentDirectionIn  PaymentDirection = "IN"  // received from a student
	PaymentDirectionOut PaymentDirection = "OUT" // sent to a mentor/professor
)

// Payment records an amount received or sent on a date, optionally linked to
// a bank account, carrying zero or more allocations
type Payment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	OwnerType     OwnerType        `gorm:"type:varchar(20);index:idx_payment_owner,priority:1" json:"owner_type"`
	OwnerID       uint             `gorm:"index:idx_payment_owner,priority:2" json:"owner_id"`
	Amount        int64            `gorm:"not null" json:"amount"` // minor units
	Currency      Currency         `gorm:"type:varchar(3);not null" json:"currency"`
	Direction     PaymentDirection `gorm:"type:varchar(3);default:'IN'" json:"direction"`
	Method        string           `gorm:"type:varchar(50)" json:"method"` // e.g. "bank_transfer", "card"
	Reference     string           `gorm:"type:varchar(255)" json:"reference"`
	PaymentDate   time.Time        `json:"payment_date"`
	BankAccountID *uint            `gorm:"index" json:"bank_account_id,omitempty"`

	// Relationships
	BankAccount *BankAccount        `gorm:"foreignKey:BankAccountID" json:"bank_account,omitempty"`
	Allocations []PaymentAllocation `gorm:"foreignKey:PaymentID" json:"allocations,omitempty"`
}

// AllocatedAmount returns the sum of the payment's allocations.
// Invariant: never exceeds Amount.
func (p Payment) AllocatedAmount() int64 {
	var total int64
	for _, a := range p.Allocations {
		total += a.Amount
	}
	return total
}

// PaymentAllocation links a payment to a schedule, recording how much of the
// payment was applied to it. Rows are created only by the allocation engine
// and are immutable once written.
type PaymentAllocation struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	PaymentID         uint  `gorm:"index;not null" json:"payment_id"`
	PaymentScheduleID uint  `gorm:"index;not null" json:"payment_schedule_id"`
	Amount            int64 `gorm:"not null" json:"amount"` // minor units

	// Relationships
	Payment         Payment         `gorm:"foreignKey:PaymentID" json:"payment,omitempty"`
	PaymentSchedule PaymentSchedule `gorm:"foreignKey:PaymentScheduleID" json:"payment_schedule,omitempty"`
}
