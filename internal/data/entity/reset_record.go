package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetRecord is one pending password-reset attempt. At most one live record
// exists per account; a new request overwrites the previous one wholesale.
type ResetRecord struct {
	AccountID uuid.UUID `db:"account_id"`
	Email     string    `db:"email"`
	Code      string    `db:"code"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
