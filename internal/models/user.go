package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents the role of a user in the platform
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleStudent       Role = "STUDENT"
	RoleMentor        Role = "MENTOR"
	RoleProfessor     Role = "PROFESSOR"
	RoleExecutiveChef Role = "EXECUTIVE_CHEF"
)

// IsAdmin reports whether the role has full administrative access
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanManageStudents reports whether the role may create and edit student records
func (r Role) CanManageStudents() bool {
	return r == RoleAdmin || r == RoleExecutiveChef
}

// CanBeImpersonated reports whether an admin may assume this role.
// Impersonating another admin is never allowed.
func (r Role) CanBeImpersonated() bool {
	switch r {
	case RoleStudent, RoleMentor, RoleProfessor, RoleExecutiveChef:
		return true
	}
	return false
}

// User represents an authenticated account in the system
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name     string `gorm:"type:varchar(255)" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Phone    string `gorm:"type:varchar(50)" json:"phone"`
	Role     Role   `gorm:"type:varchar(20);default:'STUDENT'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}
