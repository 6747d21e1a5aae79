package entity

// Account is a row in the identity provider's account table. The reset flow
// only ever reads the id/email mapping and overwrites the credential; accounts
// are created and deleted elsewhere.
type Account struct {
	Base
	Email         string `db:"email"`
	PasswordHash  string `db:"password"`
	EmailVerified bool   `db:"email_verified"`
}
