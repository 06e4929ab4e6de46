package services

import (
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm"

	"performup_api/internal/models"
)

// AuditService persists the trail of security-sensitive actions
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Log writes one audit entry. Failures are logged server-side but never
// bubble up; an audit hiccup must not fail the action it records.
func (s *AuditService) Log(userID uint, action, resourceType string, resourceID uint, metadata map[string]interface{}) {
	var raw json.RawMessage
	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			log.Printf("Failed to marshal audit metadata for %s: %v", action, err)
		} else {
			raw = data
		}
	}

	entry := models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   fmt.Sprintf("%d", resourceID),
		Metadata:     raw,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to write audit log entry %s: %v", action, err)
	}
}
