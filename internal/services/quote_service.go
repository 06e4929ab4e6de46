package services

import (
	"fmt"
	"log"
	"time"

	"github.com/teambition/rrule-go"
	"gorm.io/gorm"

	"performup_api/internal/models"
)

// QuoteService builds quotes and enforces their lifecycle:
// DRAFT -> SENT -> VALIDATED.
type QuoteService struct {
	db    *gorm.DB
	email *EmailService
}

func NewQuoteService(db *gorm.DB, email *EmailService) *QuoteService {
	return &QuoteService{db: db, email: email}
}

// NewQuoteItem is one pack line of a quote under construction
type NewQuoteItem struct {
	PackID   uint
	Quantity int
}

// InstallmentPlan describes how a quote's total is split into schedules.
// Count due dates are expanded from the RRULE starting at StartDate; the
// total divides evenly with the remainder on the first installment.
type InstallmentPlan struct {
	Count     int
	RRule     string
	StartDate time.Time
}

// ExpandInstallments splits total into the plan's due dates.
// Returned amounts always sum to total.
func ExpandInstallments(total int64, plan InstallmentPlan) ([]time.Time, []int64, error) {
	if plan.Count <= 0 {
		return nil, nil, fmt.Errorf("installment count must be positive")
	}

	rule, err := rrule.StrToRRule(plan.RRule)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}
	rule.DTStart(plan.StartDate)

	dates := make([]time.Time, 0, plan.Count)
	iter := rule.Iterator()
	for len(dates) < plan.Count {
		next, ok := iter()
		if !ok {
			return nil, nil, fmt.Errorf("recurrence rule yields only %d of %d installment dates", len(dates), plan.Count)
		}
		dates = append(dates, next)
	}

	base := total / int64(plan.Count)
	remainder := total % int64(plan.Count)
	amounts := make([]int64, plan.Count)
	for i := range amounts {
		amounts[i] = base
	}
	amounts[0] += remainder

	return dates, amounts, nil
}

// BuildQuoteItems freezes each pack's current price into a quote item and
// sums the quote total. Packs must be active and priced in the quote's
// currency; quantities below 1 count as 1. packs[i] is the pack items[i]
// refers to.
func BuildQuoteItems(packs []models.Pack, items []NewQuoteItem, currency models.Currency) ([]models.QuoteItem, int64, error) {
	quoteItems := make([]models.QuoteItem, 0, len(items))
	var total int64
	for i, pack := range packs {
		if !pack.IsActive {
			return nil, 0, NewValidationError("pack %d is retired and can no longer be quoted", pack.ID)
		}
		if pack.Currency != currency {
			return nil, 0, NewValidationError("pack %d is priced in %s, quote currency is %s", pack.ID, pack.Currency, currency)
		}
		qty := items[i].Quantity
		if qty < 1 {
			qty = 1
		}
		total += pack.Price * int64(qty)
		quoteItems = append(quoteItems, models.QuoteItem{
			PackID:    pack.ID,
			UnitPrice: pack.Price,
			Quantity:  qty,
		})
	}
	return quoteItems, total, nil
}

// Create builds a DRAFT quote with its items (pack prices frozen at quote
// time) and the proposed DRAFT schedules derived from the installment plan
func (s *QuoteService) Create(studentID uint, currency models.Currency, items []NewQuoteItem, plan InstallmentPlan, validUntil *time.Time) (*models.Quote, error) {
	var quote models.Quote

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.Preload("User").First(&student, studentID).Error; err != nil {
			return err
		}

		packs := make([]models.Pack, 0, len(items))
		for _, it := range items {
			var pack models.Pack
			if err := tx.First(&pack, it.PackID).Error; err != nil {
				return err
			}
			packs = append(packs, pack)
		}

		quoteItems, total, err := BuildQuoteItems(packs, items, currency)
		if err != nil {
			return err
		}

		dates, amounts, err := ExpandInstallments(total, plan)
		if err != nil {
			return err
		}

		quote = models.Quote{
			StudentID:   student.ID,
			Status:      models.QuoteStatusDraft,
			TotalAmount: total,
			Currency:    currency,
			ValidUntil:  validUntil,
			Items:       quoteItems,
		}
		if err := tx.Create(&quote).Error; err != nil {
			return err
		}

		for i, due := range dates {
			schedule := models.PaymentSchedule{
				OwnerType: models.OwnerStudent,
				OwnerID:   student.ID,
				QuoteID:   &quote.ID,
				Label:     fmt.Sprintf("Installment %d/%d", i+1, plan.Count),
				Amount:    amounts[i],
				Currency:  currency,
				DueDate:   due,
				Status:    models.ScheduleStatusDraft,
			}
			if err := tx.Create(&schedule).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Items").Preload("Schedules").First(&quote, quote.ID).Error; err != nil {
		return nil, err
	}
	return &quote, nil
}

// Send moves a DRAFT quote to SENT, stamps sentAt and emails the student.
// The notification is best effort: a delivery failure is logged, not surfaced.
func (s *QuoteService) Send(id uint) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.Preload("Student.User").First(&quote, id).Error; err != nil {
		return nil, err
	}

	if !quote.Status.CanTransitionTo(models.QuoteStatusSent) {
		return nil, NewTransitionError("only DRAFT quotes can be sent, current status is %s", quote.Status)
	}

	now := time.Now()
	quote.Status = models.QuoteStatusSent
	quote.SentAt = &now
	if err := s.db.Save(&quote).Error; err != nil {
		return nil, err
	}

	if s.email != nil && quote.Student.User.Email != "" {
		if err := s.email.SendQuoteNotification(quote.Student.User.Email, quote.Student.User.Name, quote.ID, quote.TotalAmount, quote.Currency); err != nil {
			log.Printf("Failed to send quote %d notification: %v", quote.ID, err)
		}
	}

	return &quote, nil
}

// Reject moves a SENT quote to REJECTED. Its proposed schedules stay DRAFT
// and are never activated.
func (s *QuoteService) Reject(id uint) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.First(&quote, id).Error; err != nil {
		return nil, err
	}

	if !quote.Status.CanTransitionTo(models.QuoteStatusRejected) {
		return nil, NewTransitionError("only SENT quotes can be rejected, current status is %s", quote.Status)
	}

	quote.Status = models.QuoteStatusRejected
	if err := s.db.Save(&quote).Error; err != nil {
		return nil, err
	}

	return &quote, nil
}

// ActivationStatus decides what status a quote schedule takes when its quote
// is validated: OVERDUE when the due date has passed, PENDING otherwise.
// A CANCELED schedule stays CANCELED; validation never resurrects it.
func ActivationStatus(s models.PaymentSchedule, now time.Time) models.ScheduleStatus {
	if s.Status == models.ScheduleStatusCanceled {
		return models.ScheduleStatusCanceled
	}
	if s.DueDate.Before(now) {
		return models.ScheduleStatusOverdue
	}
	return models.ScheduleStatusPending
}

// Validate moves a SENT quote to VALIDATED and activates every attached
// schedule in the same transaction: OVERDUE when the due date has passed,
// PENDING otherwise. Canceled schedules are left alone, and schedules are
// never left partially activated.
func (s *QuoteService) Validate(id uint) (*models.Quote, error) {
	var quote models.Quote

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Schedules").First(&quote, id).Error; err != nil {
			return err
		}

		if !quote.Status.CanTransitionTo(models.QuoteStatusValidated) {
			return NewTransitionError("only SENT quotes can be validated, current status is %s", quote.Status)
		}

		now := time.Now()
		quote.Status = models.QuoteStatusValidated
		quote.ValidatedAt = &now
		if err := tx.Save(&quote).Error; err != nil {
			return err
		}

		for i := range quote.Schedules {
			schedule := &quote.Schedules[i]
			next := ActivationStatus(*schedule, now)
			if next == schedule.Status {
				continue
			}
			schedule.Status = next
			if err := tx.Save(schedule).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &quote, nil
}
