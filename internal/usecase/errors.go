package usecase

import "errors"

// Closed set of flow errors. Handlers map these to HTTP statuses with
// errors.Is; anything outside this set is an infrastructure failure and
// surfaces as an opaque 500.
var (
	// ErrResetNotFound covers both "no pending record" and "record already
	// consumed". Callers present it as a generic invalid-or-expired message so
	// responses never reveal whether an email is registered.
	ErrResetNotFound = errors.New("no pending reset record")

	// ErrCodeMismatch leaves the record in place so the user can retry until
	// it expires.
	ErrCodeMismatch = errors.New("incorrect reset code")

	// ErrCodeExpired is returned after the expired record has been deleted;
	// the user must restart the flow.
	ErrCodeExpired = errors.New("reset code expired")

	ErrEmailNotVerified = errors.New("email is not verified")

	ErrVerificationNotFound = errors.New("verification token not found")
	ErrVerificationExpired  = errors.New("verification token expired")
)
