package tasks

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"performup_api/internal/models"
	"performup_api/internal/services"
)

// reminderWindowDays bounds how far ahead upcoming schedules are included
const reminderWindowDays = 7

// PaymentReminderTaskDef emails the owner of every open schedule that is
// overdue or due within the reminder window. Send failures are logged and
// counted; a bad SMTP day must not fail the run.
type PaymentReminderTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *PaymentReminderTaskDef) TaskID() string {
	return "payment_reminder"
}

// HandleExecution sends reminder emails for due and overdue schedules
func (t *PaymentReminderTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	now := time.Now()
	horizon := now.AddDate(0, 0, reminderWindowDays)

	var schedules []models.PaymentSchedule
	err := db.
		Where("status IN ?", []models.ScheduleStatus{
			models.ScheduleStatusPending,
			models.ScheduleStatusPartial,
			models.ScheduleStatusOverdue,
		}).
		Where("due_date < ?", horizon).
		Order("due_date ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}

	emailService := services.NewEmailService()

	sent := 0
	failed := 0
	for _, schedule := range schedules {
		user, err := resolveScheduleOwner(db, schedule)
		if err != nil {
			log.Printf("[Task: %s] Cannot resolve owner of schedule %d: %v", t.TaskID(), schedule.ID, err)
			failed++
			continue
		}

		if err := emailService.SendPaymentReminder(user.Email, user.Name, schedule); err != nil {
			log.Printf("[Task: %s] Failed to remind %s about schedule %d: %v", t.TaskID(), user.Email, schedule.ID, err)
			failed++
			continue
		}
		sent++
	}

	return map[string]interface{}{
		"status":       "success",
		"sent_count":   sent,
		"failed_count": failed,
	}, nil
}

// resolveScheduleOwner maps a schedule's polymorphic owner to its user account
func resolveScheduleOwner(db *gorm.DB, schedule models.PaymentSchedule) (*models.User, error) {
	var userID uint
	switch schedule.OwnerType {
	case models.OwnerStudent:
		var student models.Student
		if err := db.First(&student, schedule.OwnerID).Error; err != nil {
			return nil, err
		}
		userID = student.UserID
	case models.OwnerMentor:
		var mentor models.Mentor
		if err := db.First(&mentor, schedule.OwnerID).Error; err != nil {
			return nil, err
		}
		userID = mentor.UserID
	case models.OwnerProfessor:
		var professor models.Professor
		if err := db.First(&professor, schedule.OwnerID).Error; err != nil {
			return nil, err
		}
		userID = professor.UserID
	default:
		return nil, gorm.ErrRecordNotFound
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// PaymentReminderTask is the singleton instance
var PaymentReminderTask = &PaymentReminderTaskDef{}
