package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

// ImpersonationTTL bounds how long an impersonation capability lives
const ImpersonationTTL = time.Hour

var (
	ErrImpersonationForbidden = errors.New("target user cannot be impersonated")
	ErrTokenInvalid           = errors.New("impersonation token is invalid or expired")
)

// ImpersonationClaims is the payload of the signed cookie capability token
type ImpersonationClaims struct {
	AdminID   uint   `json:"admin_id"`
	TargetID  uint   `json:"target_id"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// ImpersonationService lets an admin assume another user's identity for a
// bounded window, with a persisted audit trail. The live capability is an
// HMAC-signed token mirroring the session id, checked for expiry on every read.
type ImpersonationService struct {
	db     *gorm.DB
	audit  *AuditService
	secret []byte
}

func NewImpersonationService(db *gorm.DB, audit *AuditService, secret string) *ImpersonationService {
	return &ImpersonationService{db: db, audit: audit, secret: []byte(secret)}
}

// SignToken mints the capability token for a session, expiring after
// ImpersonationTTL
func (s *ImpersonationService) SignToken(adminID, targetID uint, sessionID string, now time.Time) (string, error) {
	claims := ImpersonationClaims{
		AdminID:   adminID,
		TargetID:  targetID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ImpersonationTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies the signature and expiry of a capability token.
// Expired or tampered tokens yield ErrTokenInvalid; callers treat that the
// same as no token at all and delete the cookie.
func (s *ImpersonationService) ParseToken(tokenString string) (*ImpersonationClaims, error) {
	var claims ImpersonationClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return &claims, nil
}

// Start opens an impersonation session for an admin against a target user.
// The target must exist, be active, and hold an impersonatable role; admins
// can never impersonate other admins. Returns the session and the signed
// cookie token.
func (s *ImpersonationService) Start(adminID, targetUserID uint, ipAddress, userAgent string) (*models.ImpersonationSession, string, error) {
	var target models.User
	if err := s.db.First(&target, targetUserID).Error; err != nil {
		return nil, "", err
	}

	if !target.IsActive || !target.Role.CanBeImpersonated() {
		return nil, "", ErrImpersonationForbidden
	}

	now := time.Now()
	session := models.ImpersonationSession{
		ID:           uuid.New().String(),
		AdminUserID:  adminID,
		TargetUserID: target.ID,
		StartedAt:    now,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, "", err
	}

	token, err := s.SignToken(adminID, target.ID, session.ID, now)
	if err != nil {
		return nil, "", err
	}

	s.audit.Log(adminID, models.AuditStartImpersonation, "user", target.ID, map[string]interface{}{
		"session_id":  session.ID,
		"target_role": target.Role,
	})

	return &session, token, nil
}

// End closes the session referenced by the claims. The claims must belong to
// the calling admin; one admin cannot end another's impersonation.
func (s *ImpersonationService) End(claims *ImpersonationClaims, callerID uint) error {
	if claims.AdminID != callerID {
		return ErrImpersonationForbidden
	}

	var session models.ImpersonationSession
	if err := s.db.First(&session, "id = ?", claims.SessionID).Error; err != nil {
		return err
	}

	now := time.Now()
	session.EndedAt = &now
	if err := s.db.Save(&session).Error; err != nil {
		return err
	}

	s.audit.Log(callerID, models.AuditEndImpersonation, "user", session.TargetUserID, map[string]interface{}{
		"session_id": session.ID,
	})

	return nil
}
