package repository

import (
	"context"
	"fmt"
	"time"

	"passify-auth/internal/data/entity"
	"passify-auth/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// AccountRepository is the narrow slice of the identity provider the reset
// flow needs: resolve an email to an account and overwrite one credential.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
}

type accountRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAccountRepository(db database.PgxIface, log *zap.Logger) AccountRepository {
	return &accountRepository{
		db:  db,
		log: log.With(zap.String("repository", "account")),
	}
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	query := `
		SELECT id, email, password, email_verified, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	var account entity.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.EmailVerified,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find account by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find account by email: %w", err)
	}

	return &account, nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, passwordHash, time.Now())
	if err != nil {
		r.log.Error("Failed to update account password",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return fmt.Errorf("update password for account %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id.String())
	}

	return nil
}

func (r *accountRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE accounts
		SET email_verified = true, updated_at = $2
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		r.log.Error("Failed to mark account verified",
			zap.Error(err),
			zap.String("account_id", id.String()),
		)
		return fmt.Errorf("mark account %s verified: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", id.String())
	}

	return nil
}
