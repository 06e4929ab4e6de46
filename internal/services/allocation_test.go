package services

import (
	"testing"
	"time"

	"performup_api/internal/models"
)

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

func TestPlanAllocationOrdering(t *testing.T) {
	schedules := []models.PaymentSchedule{
		{ID: 1, Amount: 10000, PaidAmount: 0, DueDate: day(20), Status: models.ScheduleStatusPending},
		{ID: 2, Amount: 10000, PaidAmount: 4000, DueDate: day(15), Status: models.ScheduleStatusPartial},
		{ID: 3, Amount: 10000, PaidAmount: 0, DueDate: day(5), Status: models.ScheduleStatusOverdue},
		{ID: 4, Amount: 10000, PaidAmount: 0, DueDate: day(1), Status: models.ScheduleStatusOverdue},
	}

	plan := PlanAllocation(100000, schedules)

	wantOrder := []uint{4, 3, 2, 1}
	if len(plan.Suggestions) != len(wantOrder) {
		t.Fatalf("got %d suggestions; want %d", len(plan.Suggestions), len(wantOrder))
	}
	for i, want := range wantOrder {
		if plan.Suggestions[i].ScheduleID != want {
			t.Errorf("suggestion %d is schedule %d; want %d", i, plan.Suggestions[i].ScheduleID, want)
		}
	}
}

func TestPlanAllocationGreedy(t *testing.T) {
	schedules := []models.PaymentSchedule{
		{ID: 1, Amount: 10000, PaidAmount: 0, DueDate: day(1), Status: models.ScheduleStatusOverdue},
		{ID: 2, Amount: 10000, PaidAmount: 7500, DueDate: day(2), Status: models.ScheduleStatusPartial},
		{ID: 3, Amount: 10000, PaidAmount: 0, DueDate: day(3), Status: models.ScheduleStatusPending},
	}

	plan := PlanAllocation(11500, schedules)

	// 10000 fills schedule 1, 1500 of the 2500 remaining on schedule 2
	if len(plan.Suggestions) != 2 {
		t.Fatalf("got %d suggestions; want 2", len(plan.Suggestions))
	}
	if got := plan.Suggestions[0].SuggestedAllocation; got != 10000 {
		t.Errorf("first allocation = %d; want 10000", got)
	}
	if got := plan.Suggestions[1].SuggestedAllocation; got != 1500 {
		t.Errorf("second allocation = %d; want 1500", got)
	}
	if plan.Unallocated != 0 {
		t.Errorf("unallocated = %d; want 0", plan.Unallocated)
	}
}

func TestPlanAllocationNeverExceedsRemaining(t *testing.T) {
	schedules := []models.PaymentSchedule{
		{ID: 1, Amount: 10000, PaidAmount: 9000, DueDate: day(1), Status: models.ScheduleStatusPartial},
	}

	plan := PlanAllocation(50000, schedules)

	if len(plan.Suggestions) != 1 {
		t.Fatalf("got %d suggestions; want 1", len(plan.Suggestions))
	}
	if got := plan.Suggestions[0].SuggestedAllocation; got != 1000 {
		t.Errorf("allocation = %d; want 1000", got)
	}
	if plan.Unallocated != 49000 {
		t.Errorf("unallocated = %d; want 49000", plan.Unallocated)
	}
}

func TestPlanAllocationSkipsClosedSchedules(t *testing.T) {
	schedules := []models.PaymentSchedule{
		{ID: 1, Amount: 10000, PaidAmount: 10000, DueDate: day(1), Status: models.ScheduleStatusPaid},
		{ID: 2, Amount: 10000, PaidAmount: 0, DueDate: day(2), Status: models.ScheduleStatusCanceled},
		{ID: 3, Amount: 10000, PaidAmount: 0, DueDate: day(3), Status: models.ScheduleStatusDraft},
		{ID: 4, Amount: 10000, PaidAmount: 0, DueDate: day(4), Status: models.ScheduleStatusPending},
	}

	plan := PlanAllocation(5000, schedules)

	if len(plan.Suggestions) != 1 {
		t.Fatalf("got %d suggestions; want 1", len(plan.Suggestions))
	}
	if plan.Suggestions[0].ScheduleID != 4 {
		t.Errorf("suggestion targets schedule %d; want 4", plan.Suggestions[0].ScheduleID)
	}
}

func TestPlanAllocationPriorities(t *testing.T) {
	tests := []struct {
		name     string
		status   models.ScheduleStatus
		priority int
	}{
		{"overdue first", models.ScheduleStatusOverdue, PriorityOverdue},
		{"partial second", models.ScheduleStatusPartial, PriorityPartial},
		{"pending last", models.ScheduleStatusPending, PriorityPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanAllocation(100, []models.PaymentSchedule{
				{ID: 1, Amount: 1000, DueDate: day(1), Status: tt.status},
			})
			if len(plan.Suggestions) != 1 {
				t.Fatalf("got %d suggestions; want 1", len(plan.Suggestions))
			}
			if plan.Suggestions[0].Priority != tt.priority {
				t.Errorf("priority = %d; want %d", plan.Suggestions[0].Priority, tt.priority)
			}
		})
	}
}

func TestValidateAllocation(t *testing.T) {
	tests := []struct {
		name     string
		schedule models.PaymentSchedule
		amount   int64
		wantErr  bool
	}{
		{
			name:     "fits remaining amount",
			schedule: models.PaymentSchedule{ID: 1, Amount: 10000, PaidAmount: 4000, Status: models.ScheduleStatusPartial},
			amount:   6000,
			wantErr:  false,
		},
		{
			name:     "overshoots remaining amount",
			schedule: models.PaymentSchedule{ID: 1, Amount: 10000, PaidAmount: 4000, Status: models.ScheduleStatusPartial},
			amount:   6001,
			wantErr:  true,
		},
		{
			name:     "zero amount",
			schedule: models.PaymentSchedule{ID: 1, Amount: 10000, Status: models.ScheduleStatusPending},
			amount:   0,
			wantErr:  true,
		},
		{
			name:     "negative amount",
			schedule: models.PaymentSchedule{ID: 1, Amount: 10000, Status: models.ScheduleStatusPending},
			amount:   -500,
			wantErr:  true,
		},
		{
			name:     "paid schedule is closed",
			schedule: models.PaymentSchedule{ID: 1, Amount: 10000, PaidAmount: 10000, Status: models.ScheduleStatusPaid},
			amount:   100,
			wantErr:  true,
		},
		{
			name:     "canceled schedule is closed",
			schedule: models.PaymentSchedule{ID: 1, Amount: 10000, Status: models.ScheduleStatusCanceled},
			amount:   100,
			wantErr:  true,
		},
		{
			name:     "draft schedule is closed",
			schedule: models.PaymentSchedule{ID: 1, Amount: 10000, Status: models.ScheduleStatusDraft},
			amount:   100,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAllocation(tt.schedule, tt.amount)
			if tt.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateBatch(t *testing.T) {
	payment := models.Payment{
		ID:     1,
		Amount: 10000,
		Allocations: []models.PaymentAllocation{
			{PaymentID: 1, PaymentScheduleID: 1, Amount: 4000},
		},
	}

	tests := []struct {
		name         string
		instructions []AllocationInstruction
		wantErr      bool
	}{
		{
			name:         "fits payment remainder",
			instructions: []AllocationInstruction{{ScheduleID: 2, Amount: 3000}, {ScheduleID: 3, Amount: 3000}},
			wantErr:      false,
		},
		{
			name:         "batch exceeds payment remainder",
			instructions: []AllocationInstruction{{ScheduleID: 2, Amount: 3000}, {ScheduleID: 3, Amount: 3001}},
			wantErr:      true,
		},
		{
			name:         "empty batch",
			instructions: nil,
			wantErr:      true,
		},
		{
			name:         "non-positive amount",
			instructions: []AllocationInstruction{{ScheduleID: 2, Amount: 0}},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(payment, tt.instructions)
			if tt.wantErr && err == nil {
				t.Error("expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPlanAllocationNothingOpen(t *testing.T) {
	plan := PlanAllocation(5000, nil)

	if len(plan.Suggestions) != 0 {
		t.Errorf("got %d suggestions; want none", len(plan.Suggestions))
	}
	if plan.Unallocated != 5000 {
		t.Errorf("unallocated = %d; want 5000", plan.Unallocated)
	}
}
