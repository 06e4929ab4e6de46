package services

import (
	"time"

	"gorm.io/gorm"

	"performup_api/internal/models"
)

// MissionService enforces the mission status lifecycle:
// PENDING -> VALIDATED or PENDING -> REJECTED, nothing else.
type MissionService struct {
	db *gorm.DB
}

func NewMissionService(db *gorm.DB) *MissionService {
	return &MissionService{db: db}
}

// Validate moves a PENDING mission to VALIDATED and stamps validatedAt
func (s *MissionService) Validate(id uint) (*models.Mission, error) {
	var mission models.Mission
	if err := s.db.First(&mission, id).Error; err != nil {
		return nil, err
	}

	if !mission.Status.CanTransitionTo(models.MissionStatusValidated) {
		return nil, NewTransitionError("only PENDING missions can be validated, current status is %s", mission.Status)
	}

	now := time.Now()
	mission.Status = models.MissionStatusValidated
	mission.ValidatedAt = &now
	if err := s.db.Save(&mission).Error; err != nil {
		return nil, err
	}

	return &mission, nil
}

// Reject moves a PENDING mission to REJECTED, stamping rejectedAt and
// storing the reason. The handler guarantees reason is non-empty.
func (s *MissionService) Reject(id uint, reason string) (*models.Mission, error) {
	var mission models.Mission
	if err := s.db.First(&mission, id).Error; err != nil {
		return nil, err
	}

	if !mission.Status.CanTransitionTo(models.MissionStatusRejected) {
		return nil, NewTransitionError("only PENDING missions can be rejected, current status is %s", mission.Status)
	}

	now := time.Now()
	mission.Status = models.MissionStatusRejected
	mission.RejectedAt = &now
	mission.RejectionReason = reason
	if err := s.db.Save(&mission).Error; err != nil {
		return nil, err
	}

	return &mission, nil
}
