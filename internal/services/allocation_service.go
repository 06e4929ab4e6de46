package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"performup_api/internal/models"
)

// AllocationFilter narrows which open schedules a payment may be planned
// against. OwnerType/OwnerID select the debtor, Currency restricts matches.
type AllocationFilter struct {
	OwnerType models.OwnerType
	OwnerID   uint
	Currency  models.Currency
}

// AllocationInstruction is one explicit allocation to apply
type AllocationInstruction struct {
	ScheduleID uint  `json:"schedule_id"`
	Amount     int64 `json:"amount"`
}

// AllocationService distributes payments across outstanding payment schedules
type AllocationService struct {
	db *gorm.DB
}

func NewAllocationService(db *gorm.DB) *AllocationService {
	return &AllocationService{db: db}
}

// Suggest plans how amount should be split across the filter's open
// schedules, in priority order. Nothing is persisted.
func (s *AllocationService) Suggest(amount int64, filter AllocationFilter) (*AllocationPlan, error) {
	query := s.db.Where("status IN ?", []models.ScheduleStatus{
		models.ScheduleStatusPending,
		models.ScheduleStatusPartial,
		models.ScheduleStatusOverdue,
	})
	if filter.OwnerType != "" {
		query = query.Where("owner_type = ?", filter.OwnerType)
	}
	if filter.OwnerID > 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Currency != "" {
		query = query.Where("currency = ?", filter.Currency)
	}

	var schedules []models.PaymentSchedule
	if err := query.Find(&schedules).Error; err != nil {
		return nil, err
	}

	plan := PlanAllocation(amount, schedules)
	return &plan, nil
}

// Apply persists the given allocations for a payment in one transaction:
// every allocation lands or none does. Each instruction creates an
// allocation row, bumps the schedule's paid amount and recomputes its status
// (PAID when fully covered, PARTIAL otherwise).
func (s *AllocationService) Apply(paymentID uint, instructions []AllocationInstruction) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.Preload("Allocations").First(&payment, paymentID).Error; err != nil {
			return err
		}

		if err := ValidateBatch(payment, instructions); err != nil {
			return err
		}

		now := time.Now()
		for _, ins := range instructions {
			var schedule models.PaymentSchedule
			if err := tx.First(&schedule, ins.ScheduleID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return NewAllocationError("payment schedule %d not found", ins.ScheduleID)
				}
				return err
			}

			if err := ValidateAllocation(schedule, ins.Amount); err != nil {
				return err
			}

			allocation := models.PaymentAllocation{
				PaymentID:         payment.ID,
				PaymentScheduleID: schedule.ID,
				Amount:            ins.Amount,
			}
			if err := tx.Create(&allocation).Error; err != nil {
				return err
			}

			schedule.PaidAmount += ins.Amount
			if schedule.PaidAmount == schedule.Amount {
				schedule.Status = models.ScheduleStatusPaid
			} else {
				schedule.Status = models.ScheduleStatusPartial
			}
			schedule.UpdatedAt = now
			if err := tx.Save(&schedule).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
