package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"performup_api/internal/models"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// GatewayService handles online checkout of a payment schedule through the
// payment gateway: opening/resuming Snap sessions and recording settlements.
type GatewayService struct {
	db             *gorm.DB
	midtransClient *MidtransService
	allocations    *AllocationService
}

func NewGatewayService(db *gorm.DB, midtransClient *MidtransService, allocations *AllocationService) *GatewayService {
	return &GatewayService{
		db:             db,
		midtransClient: midtransClient,
		allocations:    allocations,
	}
}

// CheckActiveSession returns the latest active gateway session for a
// schedule, or nil if there is none
func (s *GatewayService) CheckActiveSession(scheduleID uint) (*models.PaymentGatewaySession, error) {
	var existingSession models.PaymentGatewaySession
	err := s.db.Where("payment_schedule_id = ? AND is_active = ?", scheduleID, true).Order("created_at desc").First(&existingSession).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // No active session
		}
		return nil, err
	}
	return &existingSession, nil
}

// CheckoutResult holds the result of an initiation attempt
type CheckoutResult struct {
	Token       string
	RedirectURL string
	IsExisting  bool
}

// InitiateCheckout starts or resumes an online payment session for a
// schedule's remaining amount
func (s *GatewayService) InitiateCheckout(schedule *models.PaymentSchedule, payer *models.User, forceNew bool, callbackURL string) (*CheckoutResult, error) {
	// 1. Check for existing active session
	existingSession, err := s.CheckActiveSession(schedule.ID)
	if err != nil {
		return nil, err
	}

	if existingSession != nil {
		// Active session exists, check its status at the gateway
		statusResp, err := s.midtransClient.CheckTransaction(existingSession.OrderID)
		if err == nil {
			switch statusResp.TransactionStatus {
			case "settlement", "capture":
				return nil, NewTransitionError("schedule %d is already paid through the gateway", schedule.ID)
			case "deny", "expire", "cancel", "failure":
				// Dead at the gateway; deactivate locally and start over
				existingSession.IsActive = false
				s.db.Save(existingSession)
			default:
				// Still pending at the gateway
				if forceNew {
					s.midtransClient.CancelTransaction(existingSession.OrderID)
					existingSession.IsActive = false
					s.db.Save(existingSession)
				} else {
					// Reuse the existing session
					var midtransResp snap.Response
					if err := json.Unmarshal(existingSession.ResponseMetadata, &midtransResp); err == nil {
						return &CheckoutResult{
							Token:       midtransResp.Token,
							RedirectURL: midtransResp.RedirectURL,
							IsExisting:  true,
						}, nil
					}
					// Stored response is broken, start over
					existingSession.IsActive = false
					s.db.Save(existingSession)
				}
			}
		} else {
			// Status check failed, assume the session is broken locally
			existingSession.IsActive = false
			s.db.Save(existingSession)
		}
	}

	// 2. Create a new transaction for the remaining amount
	amount := schedule.RemainingAmount()
	orderID := fmt.Sprintf("schedule-%d-%d", schedule.ID, time.Now().Unix())

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payer.Name,
			Email: payer.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fmt.Sprintf("schedule-%d", schedule.ID),
				Name:  schedule.Label,
				Price: amount,
				Qty:   1,
			},
		},
		Callbacks: &snap.Callbacks{
			Finish: callbackURL,
		},
	}

	resp, err := s.midtransClient.CreateTransaction(orderID, amount, req)
	if err != nil {
		return nil, err
	}

	// 3. Create the session record
	reqBytes, _ := json.Marshal(req)
	respBytes, _ := json.Marshal(resp)

	session := models.PaymentGatewaySession{
		PaymentScheduleID: schedule.ID,
		UserID:            payer.ID,
		PaymentGateway:    models.PaymentGatewayMidtrans,
		OrderID:           orderID,
		IsActive:          true,
		RequestMetadata:   reqBytes,
		ResponseMetadata:  respBytes,
	}
	s.db.Create(&session)

	return &CheckoutResult{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
		IsExisting:  false,
	}, nil
}

// RecordSettlement creates a Payment for a settled gateway transaction and
// allocates it to the schedule the session was opened for. Idempotent on the
// session: a second settlement callback for an inactive session is a no-op.
func (s *GatewayService) RecordSettlement(orderID string, grossAmount int64, method string) error {
	var session models.PaymentGatewaySession
	if err := s.db.Where("order_id = ?", orderID).First(&session).Error; err != nil {
		return err
	}
	if !session.IsActive {
		return nil
	}

	var schedule models.PaymentSchedule
	if err := s.db.First(&schedule, session.PaymentScheduleID).Error; err != nil {
		return err
	}

	payment := models.Payment{
		OwnerType:   schedule.OwnerType,
		OwnerID:     schedule.OwnerID,
		Amount:      grossAmount,
		Currency:    schedule.Currency,
		Direction:   models.PaymentDirectionIn,
		Method:      method,
		Reference:   orderID,
		PaymentDate: time.Now(),
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return err
	}

	// Apply at most the schedule's remaining amount; any gateway overpayment
	// stays unallocated on the payment
	alloc := schedule.RemainingAmount()
	if grossAmount < alloc {
		alloc = grossAmount
	}
	if alloc > 0 {
		if err := s.allocations.Apply(payment.ID, []AllocationInstruction{
			{ScheduleID: schedule.ID, Amount: alloc},
		}); err != nil {
			return err
		}
	}

	session.IsActive = false
	return s.db.Save(&session).Error
}

// DeactivateSession marks the session for an order as no longer usable
func (s *GatewayService) DeactivateSession(orderID string) error {
	return s.db.Model(&models.PaymentGatewaySession{}).
		Where("order_id = ?", orderID).
		Update("is_active", false).Error
}
