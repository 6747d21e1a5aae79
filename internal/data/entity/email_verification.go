package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailVerification is a pending email-ownership check, keyed by account.
// The token is an opaque uuid mailed as a link; the record is consumed when
// the link is followed.
type EmailVerification struct {
	AccountID uuid.UUID `db:"account_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
