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

// VerificationRepository persists pending email-verification tokens.
type VerificationRepository interface {
	Put(ctx context.Context, verification *entity.EmailVerification) error
	FindByToken(ctx context.Context, token string) (*entity.EmailVerification, error)
	Delete(ctx context.Context, accountID uuid.UUID) error
}

type verificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVerificationRepository(db database.PgxIface, log *zap.Logger) VerificationRepository {
	return &verificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "verification")),
	}
}

func (r *verificationRepository) Put(ctx context.Context, verification *entity.EmailVerification) error {
	query := `
		INSERT INTO email_verifications (account_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (account_id) DO UPDATE SET
		token = EXCLUDED.token,
		expires_at = EXCLUDED.expires_at,
		created_at = EXCLUDED.created_at
	`

	_, err := r.db.Exec(ctx, query,
		verification.AccountID,
		verification.Token,
		verification.ExpiresAt,
		verification.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to store email verification",
			zap.Error(err),
			zap.String("account_id", verification.AccountID.String()),
		)
		return fmt.Errorf("store email verification for account %s: %w",
			verification.AccountID.String(), err)
	}

	return nil
}

func (r *verificationRepository) FindByToken(ctx context.Context, token string) (*entity.EmailVerification, error) {
	query := `
		SELECT account_id, token, expires_at, created_at
		FROM email_verifications
		WHERE token = $1
	`

	var verification entity.EmailVerification
	err := r.db.QueryRow(ctx, query, token).Scan(
		&verification.AccountID,
		&verification.Token,
		&verification.ExpiresAt,
		&verification.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find email verification", zap.Error(err))
		return nil, fmt.Errorf("find email verification: %w", err)
	}

	return &verification, nil
}

func (r *verificationRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	query := `
		DELETE FROM email_verifications
		WHERE account_id = $1
	`

	_, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		r.log.Error("Failed to delete email verification",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
		return fmt.Errorf("delete email verification for account %s: %w", accountID.String(), err)
	}

	return nil
}
