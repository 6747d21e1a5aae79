package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const resetCodeDigits = 6

// GenerateResetCode returns a uniformly random 6-digit code as a zero-padded
// string. Codes gate a credential change, so the entropy source must be
// crypto/rand; math/rand is not acceptable here.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate reset code: %w", err)
	}

	return fmt.Sprintf("%0*d", resetCodeDigits, n.Int64()), nil
}
