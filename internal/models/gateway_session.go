package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type PaymentGateway string

const (
	PaymentGatewayMidtrans PaymentGateway = "midtrans"
	PaymentGatewayManual   PaymentGateway = "manual"
)

// PaymentGatewaySession tracks an online checkout opened for a payment
// schedule, so pending gateway transactions can be resumed or canceled
type PaymentGatewaySession struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	PaymentScheduleID uint            `gorm:"index" json:"payment_schedule_id"`
	UserID            uint            `json:"user_id"`
	PaymentGateway    PaymentGateway  `gorm:"type:varchar(50);not null" json:"payment_gateway"`
	OrderID           string          `gorm:"type:varchar(100);index" json:"order_id"`
	IsActive          bool            `gorm:"default:true" json:"is_active"`
	RequestMetadata   json.RawMessage `gorm:"type:jsonb" json:"request_metadata"`
	ResponseMetadata  json.RawMessage `gorm:"type:jsonb" json:"response_metadata"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

// GatewayCallbackHistory keeps the raw payload of every gateway notification
// received, for reconciliation and debugging
type GatewayCallbackHistory struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	PaymentGateway PaymentGateway  `gorm:"type:varchar(50);not null" json:"payment_gateway"`
	OrderID        string          `gorm:"type:varchar(100);index" json:"order_id"`
	Metadata       json.RawMessage `gorm:"type:jsonb" json:"metadata"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}
