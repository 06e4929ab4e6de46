package services

import (
	"sort"

	"performup_api/internal/models"
)

// Allocation priorities: overdue debt is settled first, partially paid
// schedules next, untouched pending schedules last.
const (
	PriorityOverdue = 1
	PriorityPartial = 2
	PriorityPending = 3
)

// SuggestedAllocation is one line of an allocation plan for a payment
type SuggestedAllocation struct {
	ScheduleID          uint  `json:"schedule_id"`
	Remaining           int64 `json:"remaining"`
	SuggestedAllocation int64 `json:"suggested_allocation"`
	Priority            int   `json:"priority"`
}

// AllocationPlan is the result of planning a payment across open schedules
type AllocationPlan struct {
	Suggestions []SuggestedAllocation `json:"suggestions"`
	Unallocated int64                 `json:"unallocated"`
}

func schedulePriority(s models.PaymentSchedule) int {
	switch s.Status {
	case models.ScheduleStatusOverdue:
		return PriorityOverdue
	case models.ScheduleStatusPartial:
		return PriorityPartial
	default:
		return PriorityPending
	}
}

// ValidateAllocation checks a single allocation against its target schedule:
// the amount must be positive, the schedule must be open, and the allocation
// may not exceed what is left on the schedule.
func ValidateAllocation(s models.PaymentSchedule, amount int64) error {
	if amount <= 0 {
		return NewAllocationError("allocation amount must be positive")
	}
	if !s.IsOpen() {
		return NewAllocationError("payment schedule %d is not open for allocation", s.ID)
	}
	if s.PaidAmount+amount > s.Amount {
		return NewAllocationError(
			"allocation of %d exceeds remaining amount %d on schedule %d",
			amount, s.RemainingAmount(), s.ID)
	}
	return nil
}

// ValidateBatch checks a set of allocation instructions against the payment
// funding them: the batch must be non-empty, every amount positive, and the
// batch total may not exceed what is left of the payment.
func ValidateBatch(p models.Payment, instructions []AllocationInstruction) error {
	if len(instructions) == 0 {
		return NewAllocationError("no allocations provided")
	}
	var batchTotal int64
	for _, ins := range instructions {
		if ins.Amount <= 0 {
			return NewAllocationError("allocation amount must be positive")
		}
		batchTotal += ins.Amount
	}
	if p.AllocatedAmount()+batchTotal > p.Amount {
		return NewAllocationError("allocations exceed the payment amount")
	}
	return nil
}

// PlanAllocation greedily distributes amount across the given open schedules.
// Candidates are visited OVERDUE first, then PARTIAL, then PENDING, ties
// broken by ascending due date; each receives min(left, remaining). Whatever
// cannot be placed is reported as Unallocated, never forced onto a schedule.
func PlanAllocation(amount int64, schedules []models.PaymentSchedule) AllocationPlan {
	candidates := make([]models.PaymentSchedule, 0, len(schedules))
	for _, s := range schedules {
		if s.IsOpen() && s.RemainingAmount() > 0 {
			candidates = append(candidates, s)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := schedulePriority(candidates[i]), schedulePriority(candidates[j])
		if pi != pj {
			return pi < pj
		}
		return candidates[i].DueDate.Before(candidates[j].DueDate)
	})

	plan := AllocationPlan{Suggestions: []SuggestedAllocation{}}
	left := amount
	for _, s := range candidates {
		if left <= 0 {
			break
		}
		alloc := s.RemainingAmount()
		if alloc > left {
			alloc = left
		}
		plan.Suggestions = append(plan.Suggestions, SuggestedAllocation{
			ScheduleID:          s.ID,
			Remaining:           s.RemainingAmount(),
			SuggestedAllocation: alloc,
			Priority:            schedulePriority(s),
		})
		left -= alloc
	}
	plan.Unallocated = left

	return plan
}
