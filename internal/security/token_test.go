package security

import (
	"errors"
	"testing"
	"time"
)

func TestTokenIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	userID, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if userID != 42 {
		t.Errorf("Validate() = %d, want 42", userID)
	}
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := issuer.Validate(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Validate() error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-one", time.Hour)
	other := NewTokenIssuer("secret-two", time.Hour)

	token, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := other.Validate(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Validate() with wrong secret error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenGarbageInput(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Validate(input); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Validate(%q) error = %v, want ErrTokenInvalid", input, err)
		}
	}
}

func TestTokenDisabledWithoutSecret(t *testing.T) {
	issuer := NewTokenIssuer("", time.Hour)

	if issuer.Enabled() {
		t.Error("Enabled() should be false with empty secret")
	}
	if _, err := issuer.Issue(1); err == nil {
		t.Error("Issue() should fail with empty secret")
	}
	if _, err := issuer.Validate("anything"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Validate() error = %v, want ErrTokenInvalid", err)
	}
}
