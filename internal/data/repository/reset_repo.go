package repository

import (
	"context"
	"fmt"

	"passify-auth/internal/data/entity"
	"passify-auth/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ResetRepository persists pending reset codes, one live record per account.
type ResetRepository interface {
	// Put overwrites any existing record for the account. Overwriting is the
	// defined way to invalidate a stale code on resend.
	Put(ctx context.Context, record *entity.ResetRecord) error

	// FindByEmail returns the pending record for an email, or nil when none.
	FindByEmail(ctx context.Context, email string) (*entity.ResetRecord, error)

	// Consume deletes the record only if the account, code and expiry still
	// match, reporting whether this caller won the delete. Concurrent
	// verifiers race here; at most one sees consumed=true.
	Consume(ctx context.Context, accountID uuid.UUID, code string) (bool, error)

	// Delete removes the record for an account. Idempotent.
	Delete(ctx context.Context, accountID uuid.UUID) error
}

type resetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewResetRepository(db database.PgxIface, log *zap.Logger) ResetRepository {
	return &resetRepository{
		db:  db,
		log: log.With(zap.String("repository", "reset")),
	}
}

func (r *resetRepository) Put(ctx context.Context, record *entity.ResetRecord) error {
	query := `
		INSERT INTO password_resets (account_id, email, code, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id) DO UPDATE SET
		email = EXCLUDED.email,
		code = EXCLUDED.code,
		expires_at = EXCLUDED.expires_at,
		created_at = EXCLUDED.created_at
	`

	_, err := r.db.Exec(ctx, query,
		record.AccountID,
		record.Email,
		record.Code,
		record.ExpiresAt,
		record.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to store reset record",
			zap.Error(err),
			zap.String("email", record.Email),
		)
		return fmt.Errorf("store reset record for %s: %w", record.Email, err)
	}

	return nil
}

func (r *resetRepository) FindByEmail(ctx context.Context, email string) (*entity.ResetRecord, error) {
	query := `
		SELECT account_id, email, code, expires_at, created_at
		FROM password_resets
		WHERE email = $1
	`

	var record entity.ResetRecord
	err := r.db.QueryRow(ctx, query, email).Scan(
		&record.AccountID,
		&record.Email,
		&record.Code,
		&record.ExpiresAt,
		&record.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reset record",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find reset record for %s: %w", email, err)
	}

	return &record, nil
}

func (r *resetRepository) Consume(ctx context.Context, accountID uuid.UUID, code string) (bool, error) {
	// Compare-and-delete in one statement so two concurrent verifiers cannot
	// both consume the same record.
	query := `
		DELETE FROM password_resets
		WHERE account_id = $1 AND code = $2 AND expires_at > NOW()
	`

	result, err := r.db.Exec(ctx, query, accountID, code)
	if err != nil {
		r.log.Error("Failed to consume reset record",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return false, fmt.Errorf("consume reset record for account %s: %w", accountID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *resetRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	query := `
		DELETE FROM password_resets
		WHERE account_id = $1
	`

	_, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		r.log.Error("Failed to delete reset record",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return fmt.Errorf("delete reset record for account %s: %w", accountID.String(), err)
	}

	return nil
}
