package services

import (
	"errors"
	"testing"
	"time"
)

func TestImpersonationTokenRoundtrip(t *testing.T) {
	svc := NewImpersonationService(nil, nil, "test-secret")

	token, err := svc.SignToken(1, 42, "session-abc", time.Now())
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.AdminID != 1 {
		t.Errorf("AdminID = %d; want 1", claims.AdminID)
	}
	if claims.TargetID != 42 {
		t.Errorf("TargetID = %d; want 42", claims.TargetID)
	}
	if claims.SessionID != "session-abc" {
		t.Errorf("SessionID = %q; want %q", claims.SessionID, "session-abc")
	}
}

func TestImpersonationTokenExpired(t *testing.T) {
	svc := NewImpersonationService(nil, nil, "test-secret")

	// Signed far enough in the past that the TTL has elapsed
	issuedAt := time.Now().Add(-2 * ImpersonationTTL)
	token, err := svc.SignToken(1, 42, "session-abc", issuedAt)
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	_, err = svc.ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken on expired token = %v; want ErrTokenInvalid", err)
	}
}

func TestImpersonationTokenWrongSecret(t *testing.T) {
	signer := NewImpersonationService(nil, nil, "secret-a")
	verifier := NewImpersonationService(nil, nil, "secret-b")

	token, err := signer.SignToken(1, 42, "session-abc", time.Now())
	if err != nil {
		t.Fatalf("SignToken failed: %v", err)
	}

	_, err = verifier.ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken with wrong secret = %v; want ErrTokenInvalid", err)
	}
}

func TestImpersonationTokenGarbage(t *testing.T) {
	svc := NewImpersonationService(nil, nil, "test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a jwt", "hello world"},
		{"truncated jwt", "eyJhbGciOiJIUzI1NiJ9.eyJmb28i"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ParseToken(tt.token); !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("ParseToken(%q) = %v; want ErrTokenInvalid", tt.token, err)
			}
		})
	}
}
