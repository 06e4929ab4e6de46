package models

import (
	"time"

	"gorm.io/gorm"
)

type MissionStatus string

const (
	MissionStatusPending   MissionStatus = "PENDING"
	MissionStatusValidated MissionStatus = "VALIDATED"
	MissionStatusRejected  MissionStatus = "REJECTED"
	MissionStatusPaid      MissionStatus = "PAID"
)

// CanTransitionTo reports whether a mission may move from this status to
// target. Decisions are only made on PENDING missions; a VALIDATED mission
// can later be marked PAID. REJECTED and PAID are terminal.
func (s MissionStatus) CanTransitionTo(target MissionStatus) bool {
	switch s {
	case MissionStatusPending:
		return target == MissionStatusValidated || target == MissionStatusRejected
	case MissionStatusValidated:
		return target == MissionStatusPaid
	}
	return false
}

// Mission represents billable work declared by a mentor or professor.
// VALIDATED and REJECTED are reachable only from PENDING.
type Mission struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	MentorID    *uint    `gorm:"index" json:"mentor_id,omitempty"`
	ProfessorID *uint    `gorm:"index" json:"professor_id,omitempty"`
	StudentID   *uint    `gorm:"index" json:"student_id,omitempty"`
	Title       string   `gorm:"type:varchar(255)" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Amount      int64    `json:"amount"` // minor units
	Currency    Currency `gorm:"type:varchar(3);default:'EUR'" json:"currency"`

	Status          MissionStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	ValidatedAt     *time.Time    `json:"validated_at,omitempty"`
	RejectedAt      *time.Time    `json:"rejected_at,omitempty"`
	RejectionReason string        `gorm:"type:text" json:"rejection_reason,omitempty"`

	// Relationships
	Mentor    *Mentor    `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	Professor *Professor `gorm:"foreignKey:ProfessorID" json:"professor,omitempty"`
	Student   *Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
