package repository

import (
	"passify-auth/pkg/database"

	"go.uber.org/zap"
)

// Repository groups all data access behind one injection point.
type Repository struct {
	Account      AccountRepository
	Reset        ResetRepository
	Verification VerificationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Account:      NewAccountRepository(db, log),
		Reset:        NewResetRepository(db, log),
		Verification: NewVerificationRepository(db, log),
	}
}
