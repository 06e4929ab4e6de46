package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Audit actions for security-sensitive operations
const (
	AuditStartImpersonation = "START_IMPERSONATION"
	AuditEndImpersonation   = "END_IMPERSONATION"
	AuditChangeRole         = "CHANGE_ROLE"
	AuditDeactivateUser     = "DEACTIVATE_USER"
)

// AuditLog records who did what to which resource
type AuditLog struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	UserID       uint            `gorm:"index" json:"user_id"`
	Action       string          `gorm:"type:varchar(100);index" json:"action"`
	ResourceType string          `gorm:"type:varchar(100)" json:"resource_type"`
	ResourceID   string          `gorm:"type:varchar(100)" json:"resource_id"`
	Metadata     json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
