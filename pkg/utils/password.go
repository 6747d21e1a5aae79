package utils

import (
	"fmt"
	"unicode"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	passwordMinLength      = 12
	passwordMinEntropyBits = 60
)

// ValidatePasswordStrength enforces the password policy applied before any
// credential change: minimum length, all four character classes, and an
// entropy floor to reject patterned passwords that pass the class checks.
func ValidatePasswordStrength(password string) error {
	if len(password) < passwordMinLength {
		return fmt.Errorf("password must be at least %d characters long", passwordMinLength)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsPunct(c) || unicode.IsSymbol(c):
			hasSymbol = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSymbol {
		return fmt.Errorf("password must contain uppercase, lowercase, digit and symbol characters")
	}

	if err := passwordvalidator.Validate(password, passwordMinEntropyBits); err != nil {
		return fmt.Errorf("password is too predictable: %w", err)
	}

	return nil
}
