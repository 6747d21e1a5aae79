// Package token issues and validates the short-lived exchange token minted
// after a reset code is verified. The token is the only proof accepted by the
// password commit endpoint; it is stateless, HMAC-signed, and carries its own
// expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret means the signing secret is not configured. This is a server
	// misconfiguration and must surface as a 5xx, never as an unsigned token.
	ErrNoSecret = errors.New("reset token secret is not configured")

	ErrTokenExpired = errors.New("reset token has expired")
	ErrTokenInvalid = errors.New("reset token is invalid")
)

// ResetClaims are the claims embedded in an exchange token: the account whose
// email ownership was just proven.
type ResetClaims struct {
	Email string `json:"email"`
	UID   string `json:"uid"`
	jwt.RegisteredClaims
}

type Signer struct {
	secret []byte
	expiry time.Duration
}

func NewSigner(secret string, expiry time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue signs an exchange token asserting that email ownership for the
// account was proven just now.
func (s *Signer) Issue(email, uid string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := ResetClaims{
		Email: email,
		UID:   uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign reset token: %w", err)
	}

	return tokenStr, nil
}

// Validate checks signature and expiry and returns the embedded claims.
func (s *Signer) Validate(tokenStr string) (*ResetClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSecret
	}

	claims := &ResetClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
