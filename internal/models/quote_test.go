package models

import "testing"

func TestQuoteStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from QuoteStatus
		to   QuoteStatus
		want bool
	}{
		{"draft can be sent", QuoteStatusDraft, QuoteStatusSent, true},
		{"draft cannot be validated", QuoteStatusDraft, QuoteStatusValidated, false},
		{"draft cannot be rejected", QuoteStatusDraft, QuoteStatusRejected, false},
		{"sent can be validated", QuoteStatusSent, QuoteStatusValidated, true},
		{"sent can be rejected", QuoteStatusSent, QuoteStatusRejected, true},
		{"sent can expire", QuoteStatusSent, QuoteStatusExpired, true},
		{"sent cannot go back to draft", QuoteStatusSent, QuoteStatusDraft, false},
		{"validated is terminal", QuoteStatusValidated, QuoteStatusSent, false},
		{"validated cannot be validated again", QuoteStatusValidated, QuoteStatusValidated, false},
		{"rejected is terminal", QuoteStatusRejected, QuoteStatusSent, false},
		{"expired is terminal", QuoteStatusExpired, QuoteStatusValidated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s = %v; want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
