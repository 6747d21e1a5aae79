package token

import (
	"errors"
	"testing"
	"time"
)

func TestSigner_RoundTrip(t *testing.T) {
	signer := NewSigner("test-secret", 5*time.Minute)

	tokenStr, err := signer.Issue("alice@example.com", "a4f9e6f2-1111-2222-3333-444455556666")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	claims, err := signer.Validate(tokenStr)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "alice@example.com")
	}
	if claims.UID != "a4f9e6f2-1111-2222-3333-444455556666" {
		t.Errorf("UID = %q, want %q", claims.UID, "a4f9e6f2-1111-2222-3333-444455556666")
	}
}

func TestSigner_ExpiredToken(t *testing.T) {
	// Negative lifetime: the token is already expired when issued
	signer := NewSigner("test-secret", -1*time.Minute)

	tokenStr, err := signer.Issue("alice@example.com", "u1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = signer.Validate(tokenStr)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Validate() error = %v, want ErrTokenExpired", err)
	}
}

func TestSigner_WrongSecret(t *testing.T) {
	issuer := NewSigner("secret-a", 5*time.Minute)
	validator := NewSigner("secret-b", 5*time.Minute)

	tokenStr, err := issuer.Issue("alice@example.com", "u1")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	_, err = validator.Validate(tokenStr)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Validate() error = %v, want ErrTokenInvalid", err)
	}
}

func TestSigner_MalformedToken(t *testing.T) {
	signer := NewSigner("test-secret", 5*time.Minute)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := signer.Validate(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Validate(%q) error = %v, want ErrTokenInvalid", tok, err)
		}
	}
}

func TestSigner_MissingSecret(t *testing.T) {
	signer := NewSigner("", 5*time.Minute)

	if _, err := signer.Issue("alice@example.com", "u1"); !errors.Is(err, ErrNoSecret) {
		t.Errorf("Issue() error = %v, want ErrNoSecret", err)
	}
	if _, err := signer.Validate("whatever"); !errors.Is(err, ErrNoSecret) {
		t.Errorf("Validate() error = %v, want ErrNoSecret", err)
	}
}
