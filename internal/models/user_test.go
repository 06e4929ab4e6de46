package models

import "testing"

func TestRolePredicates(t *testing.T) {
	tests := []struct {
		role              Role
		isAdmin           bool
		canManageStudents bool
		canBeImpersonated bool
	}{
		{RoleAdmin, true, true, false},
		{RoleExecutiveChef, false, true, true},
		{RoleStudent, false, false, true},
		{RoleMentor, false, false, true},
		{RoleProfessor, false, false, true},
		{Role("UNKNOWN"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.IsAdmin(); got != tt.isAdmin {
				t.Errorf("IsAdmin() = %v; want %v", got, tt.isAdmin)
			}
			if got := tt.role.CanManageStudents(); got != tt.canManageStudents {
				t.Errorf("CanManageStudents() = %v; want %v", got, tt.canManageStudents)
			}
			if got := tt.role.CanBeImpersonated(); got != tt.canBeImpersonated {
				t.Errorf("CanBeImpersonated() = %v; want %v", got, tt.canBeImpersonated)
			}
		})
	}
}

func TestCurrencyIsValid(t *testing.T) {
	valid := []Currency{CurrencyEUR, CurrencyUSD, CurrencyGBP}
	for _, c := range valid {
		if !c.IsValid() {
			t.Errorf("IsValid(%s) = false; want true", c)
		}
	}
	if Currency("JPY").IsValid() {
		t.Error("IsValid(JPY) = true; want false")
	}
}
