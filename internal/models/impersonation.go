package models

import (
	"time"

	"gorm.io/gorm"
)

// ImpersonationSession is the persisted audit trail of an admin assuming
// another user's identity. The live capability lives in a signed cookie that
// mirrors the session id; the row outlives the cookie.
type ImpersonationSession struct {
	ID        string         `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	AdminUserID  uint       `gorm:"index" json:"admin_user_id"`
	TargetUserID uint       `gorm:"index" json:"target_user_id"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	IPAddress    string     `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent    string     `gorm:"type:varchar(512)" json:"user_agent"`

	// Relationships
	AdminUser  User `gorm:"foreignKey:AdminUserID" json:"admin_user,omitempty"`
	TargetUser User `gorm:"foreignKey:TargetUserID" json:"target_user,omitempty"`
}
