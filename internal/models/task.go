package models

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// Task represents a work item on a student's application checklist
type Task struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	StudentID      uint       `gorm:"index" json:"student_id"`
	AssignedUserID *uint      `gorm:"index" json:"assigned_user_id,omitempty"`
	Title          string     `gorm:"type:varchar(255)" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Status         TaskStatus `gorm:"type:varchar(20);default:'TODO';index" json:"status"`
	DueDate        *time.Time `json:"due_date,omitempty"`

	// Relationships
	Student      Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	AssignedUser *User   `gorm:"foreignKey:AssignedUserID" json:"assigned_user,omitempty"`
}
