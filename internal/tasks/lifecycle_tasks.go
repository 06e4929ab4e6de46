package tasks

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"performup_api/internal/models"
)

// SweepOverdueSchedulesTaskDef moves PENDING schedules past their due date
// to OVERDUE. Scheduled as a recurring task; the API applies the same
// derivation lazily, the sweep keeps listings honest between requests.
type SweepOverdueSchedulesTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *SweepOverdueSchedulesTaskDef) TaskID() string {
	return "sweep_overdue_schedules"
}

// HandleExecution flips every expired PENDING schedule to OVERDUE
func (t *SweepOverdueSchedulesTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	now := time.Now()

	result := db.Model(&models.PaymentSchedule{}).
		Where("status = ? AND due_date < ?", models.ScheduleStatusPending, now).
		Update("status", models.ScheduleStatusOverdue)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("[Task: %s] Marked %d schedules overdue", t.TaskID(), result.RowsAffected)
	}

	return map[string]interface{}{
		"status":       "success",
		"marked_count": result.RowsAffected,
	}, nil
}

// SweepOverdueSchedulesTask is the singleton instance
var SweepOverdueSchedulesTask = &SweepOverdueSchedulesTaskDef{}

// ExpireQuotesTaskDef expires SENT quotes whose validity window has closed
type ExpireQuotesTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *ExpireQuotesTaskDef) TaskID() string {
	return "expire_quotes"
}

// HandleExecution flips every SENT quote past its valid_until to EXPIRED
func (t *ExpireQuotesTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	now := time.Now()

	result := db.Model(&models.Quote{}).
		Where("status = ? AND valid_until IS NOT NULL AND valid_until < ?", models.QuoteStatusSent, now).
		Update("status", models.QuoteStatusExpired)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected > 0 {
		log.Printf("[Task: %s] Expired %d quotes", t.TaskID(), result.RowsAffected)
	}

	return map[string]interface{}{
		"status":        "success",
		"expired_count": result.RowsAffected,
	}, nil
}

// ExpireQuotesTask is the singleton instance
var ExpireQuotesTask = &ExpireQuotesTaskDef{}
