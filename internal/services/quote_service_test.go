package services

import (
	"testing"
	"time"

	"performup_api/internal/models"
)

func TestExpandInstallmentsEvenSplit(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	dates, amounts, err := ExpandInstallments(30000, InstallmentPlan{
		Count:     3,
		RRule:     "FREQ=MONTHLY",
		StartDate: start,
	})
	if err != nil {
		t.Fatalf("ExpandInstallments failed: %v", err)
	}

	if len(dates) != 3 || len(amounts) != 3 {
		t.Fatalf("got %d dates and %d amounts; want 3 and 3", len(dates), len(amounts))
	}

	for i, amount := range amounts {
		if amount != 10000 {
			t.Errorf("amount %d = %d; want 10000", i, amount)
		}
	}

	if !dates[0].Equal(start) {
		t.Errorf("first due date = %v; want %v", dates[0], start)
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			t.Errorf("due date %d (%v) is not after %v", i, dates[i], dates[i-1])
		}
	}
}

func TestExpandInstallmentsRemainderOnFirst(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, amounts, err := ExpandInstallments(10000, InstallmentPlan{
		Count:     3,
		RRule:     "FREQ=MONTHLY",
		StartDate: start,
	})
	if err != nil {
		t.Fatalf("ExpandInstallments failed: %v", err)
	}

	if amounts[0] != 3334 {
		t.Errorf("first amount = %d; want 3334", amounts[0])
	}
	if amounts[1] != 3333 || amounts[2] != 3333 {
		t.Errorf("tail amounts = %d, %d; want 3333, 3333", amounts[1], amounts[2])
	}

	var sum int64
	for _, a := range amounts {
		sum += a
	}
	if sum != 10000 {
		t.Errorf("amounts sum to %d; want 10000", sum)
	}
}

func TestExpandInstallmentsInvalidInput(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		plan InstallmentPlan
	}{
		{"zero count", InstallmentPlan{Count: 0, RRule: "FREQ=MONTHLY", StartDate: start}},
		{"negative count", InstallmentPlan{Count: -1, RRule: "FREQ=MONTHLY", StartDate: start}},
		{"bad rule", InstallmentPlan{Count: 3, RRule: "NOT A RULE", StartDate: start}},
		{"rule runs dry", InstallmentPlan{Count: 5, RRule: "FREQ=MONTHLY;COUNT=2", StartDate: start}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ExpandInstallments(10000, tt.plan); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestBuildQuoteItems(t *testing.T) {
	packs := []models.Pack{
		{ID: 1, Price: 50000, Currency: models.CurrencyEUR, IsActive: true},
		{ID: 2, Price: 20000, Currency: models.CurrencyEUR, IsActive: true},
	}

	items, total, err := BuildQuoteItems(packs, []NewQuoteItem{
		{PackID: 1, Quantity: 2},
		{PackID: 2, Quantity: 0},
	}, models.CurrencyEUR)
	if err != nil {
		t.Fatalf("BuildQuoteItems failed: %v", err)
	}

	// 2 * 50000 plus one of pack 2, quantity 0 counting as 1
	if total != 120000 {
		t.Errorf("total = %d; want 120000", total)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items; want 2", len(items))
	}
	if items[0].UnitPrice != 50000 || items[0].Quantity != 2 {
		t.Errorf("item 0 = %d x %d; want 50000 x 2", items[0].UnitPrice, items[0].Quantity)
	}
	if items[1].Quantity != 1 {
		t.Errorf("item 1 quantity = %d; want 1", items[1].Quantity)
	}
}

func TestBuildQuoteItemsRejectsMismatchedCurrency(t *testing.T) {
	packs := []models.Pack{
		{ID: 1, Price: 50000, Currency: models.CurrencyUSD, IsActive: true},
	}

	_, _, err := BuildQuoteItems(packs, []NewQuoteItem{{PackID: 1, Quantity: 1}}, models.CurrencyEUR)
	if err == nil {
		t.Fatal("expected an error for a USD pack on a EUR quote, got nil")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("error is %T; want *ValidationError", err)
	}
}

func TestBuildQuoteItemsRejectsRetiredPack(t *testing.T) {
	packs := []models.Pack{
		{ID: 1, Price: 50000, Currency: models.CurrencyEUR, IsActive: false},
	}

	_, _, err := BuildQuoteItems(packs, []NewQuoteItem{{PackID: 1, Quantity: 1}}, models.CurrencyEUR)
	if err == nil {
		t.Fatal("expected an error for a retired pack, got nil")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("error is %T; want *ValidationError", err)
	}
}

func TestActivationStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		schedule models.PaymentSchedule
		want     models.ScheduleStatus
	}{
		{
			name:     "past due date becomes overdue",
			schedule: models.PaymentSchedule{Status: models.ScheduleStatusDraft, DueDate: now.AddDate(0, -1, 0)},
			want:     models.ScheduleStatusOverdue,
		},
		{
			name:     "future due date becomes pending",
			schedule: models.PaymentSchedule{Status: models.ScheduleStatusDraft, DueDate: now.AddDate(0, 1, 0)},
			want:     models.ScheduleStatusPending,
		},
		{
			name:     "canceled schedule stays canceled",
			schedule: models.PaymentSchedule{Status: models.ScheduleStatusCanceled, DueDate: now.AddDate(0, -1, 0)},
			want:     models.ScheduleStatusCanceled,
		},
		{
			name:     "canceled future schedule stays canceled",
			schedule: models.PaymentSchedule{Status: models.ScheduleStatusCanceled, DueDate: now.AddDate(0, 1, 0)},
			want:     models.ScheduleStatusCanceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActivationStatus(tt.schedule, now); got != tt.want {
				t.Errorf("ActivationStatus = %s; want %s", got, tt.want)
			}
		})
	}
}
