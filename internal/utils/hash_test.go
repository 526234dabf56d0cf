package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Success(t *testing.T) {
	digest, err := HashPassword("p1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if digest == "" {
		t.Fatal("expected non-empty digest")
	}
	if digest == "p1" {
		t.Fatal("digest must not equal the plaintext password")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("expected a bcrypt digest, got %q", digest)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("p1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("p1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// bcrypt embeds a random salt, so two digests of the same password differ
	if first == second {
		t.Error("expected different digests for the same password")
	}
}

func TestCheckPassword(t *testing.T) {
	digest, err := HashPassword("correct-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		digest   string
		want     bool
	}{
		{"matching password", "correct-password", digest, true},
		{"wrong password", "wrong-password", digest, false},
		{"empty password", "", digest, false},
		{"malformed digest", "correct-password", "not-a-bcrypt-digest", false},
		{"empty digest", "correct-password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, tt.digest); got != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHashPassword_ExcessiveCost(t *testing.T) {
	if _, err := HashPassword("p1", bcrypt.MaxCost+1); err == nil {
		t.Error("expected error for cost above bcrypt.MaxCost, got nil")
	}
}
