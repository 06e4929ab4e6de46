package models

import "testing"

func TestMissionStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from MissionStatus
		to   MissionStatus
		want bool
	}{
		{"pending can be validated", MissionStatusPending, MissionStatusValidated, true},
		{"pending can be rejected", MissionStatusPending, MissionStatusRejected, true},
		{"pending cannot be paid directly", MissionStatusPending, MissionStatusPaid, false},
		{"validated can be paid", MissionStatusValidated, MissionStatusPaid, true},
		{"validated cannot be validated again", MissionStatusValidated, MissionStatusValidated, false},
		{"validated cannot be rejected", MissionStatusValidated, MissionStatusRejected, false},
		{"rejected is terminal", MissionStatusRejected, MissionStatusValidated, false},
		{"paid is terminal", MissionStatusPaid, MissionStatusValidated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s = %v; want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}
