package models

import (
	"testing"
	"time"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		schedule PaymentSchedule
		want     ScheduleStatus
	}{
		{
			name:     "fully paid",
			schedule: PaymentSchedule{Amount: 10000, PaidAmount: 10000, DueDate: now.AddDate(0, 1, 0)},
			want:     ScheduleStatusPaid,
		},
		{
			name:     "overpaid still counts as paid",
			schedule: PaymentSchedule{Amount: 10000, PaidAmount: 12000, DueDate: now.AddDate(0, 1, 0)},
			want:     ScheduleStatusPaid,
		},
		{
			name:     "partially paid before due date",
			schedule: PaymentSchedule{Amount: 10000, PaidAmount: 5000, DueDate: now.AddDate(0, 1, 0)},
			want:     ScheduleStatusPartial,
		},
		{
			name:     "partially paid past due date stays partial",
			schedule: PaymentSchedule{Amount: 10000, PaidAmount: 5000, DueDate: now.AddDate(0, -1, 0)},
			want:     ScheduleStatusPartial,
		},
		{
			name:     "untouched past due date",
			schedule: PaymentSchedule{Amount: 10000, PaidAmount: 0, DueDate: now.AddDate(0, -1, 0)},
			want:     ScheduleStatusOverdue,
		},
		{
			name:     "untouched before due date",
			schedule: PaymentSchedule{Amount: 10000, PaidAmount: 0, DueDate: now.AddDate(0, 1, 0)},
			want:     ScheduleStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.schedule.DeriveStatus(now); got != tt.want {
				t.Errorf("DeriveStatus() = %s; want %s", got, tt.want)
			}
		})
	}
}

func TestIsOpen(t *testing.T) {
	tests := []struct {
		status ScheduleStatus
		want   bool
	}{
		{ScheduleStatusDraft, false},
		{ScheduleStatusPending, true},
		{ScheduleStatusPartial, true},
		{ScheduleStatusOverdue, true},
		{ScheduleStatusPaid, false},
		{ScheduleStatusCanceled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			s := PaymentSchedule{Status: tt.status}
			if got := s.IsOpen(); got != tt.want {
				t.Errorf("IsOpen() with status %s = %v; want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestRemainingAmount(t *testing.T) {
	s := PaymentSchedule{Amount: 10000, PaidAmount: 3500}
	if got := s.RemainingAmount(); got != 6500 {
		t.Errorf("RemainingAmount() = %d; want 6500", got)
	}
}
