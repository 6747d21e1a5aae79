package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"passify-auth/internal/data/entity"
	"passify-auth/internal/data/repository"
	"passify-auth/pkg/token"
	"passify-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResetService runs the password-reset lifecycle: issue a code, verify it,
// exchange it for a signed token, and commit the new password.
type ResetService interface {
	// RequestReset creates and mails a reset code for the account behind
	// email. Returns nil for unknown emails so responses stay uniform.
	RequestReset(ctx context.Context, email string) error

	// VerifyResetCode checks a submitted code, consumes the record on success
	// and returns a short-lived exchange token.
	VerifyResetCode(ctx context.Context, email, code string) (string, error)

	// ResetPassword validates an exchange token and overwrites the account's
	// credential with the new password.
	ResetPassword(ctx context.Context, tokenStr, newPassword string) error
}

type resetService struct {
	repo   *repository.Repository
	signer TokenSigner
	mail   Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewResetService(
	repo *repository.Repository,
	signer TokenSigner,
	mail Mailer,
	config *utils.Config,
	log *zap.Logger,
) ResetService {
	return &resetService{
		repo:   repo,
		signer: signer,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *resetService) RequestReset(ctx context.Context, email string) error {
	// 1. Resolve the account
	account, err := s.repo.Account.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up account for reset", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("look up account: %w", err)
	}

	// Unknown email: report success upstream so the response cannot be used
	// to probe which addresses are registered.
	if account == nil {
		s.log.Info("Reset requested for unknown email", zap.String("email", email))
		return nil
	}

	// 2. Only verified mailboxes may receive reset codes
	if !account.EmailVerified {
		return ErrEmailNotVerified
	}

	// 3. Generate the code
	code, err := utils.GenerateResetCode()
	if err != nil {
		s.log.Error("Failed to generate reset code", zap.Error(err))
		return err
	}

	now := time.Now()
	record := &entity.ResetRecord{
		AccountID: account.ID,
		Email:     account.Email,
		Code:      code,
		ExpiresAt: now.Add(s.config.Reset.CodeExpiry),
		CreatedAt: now,
	}

	// 4. Persist, overwriting any prior pending code for this account
	if err := s.repo.Reset.Put(ctx, record); err != nil {
		return err
	}

	// 5. Mail the code
	if err := s.mail.SendResetCode(account.Email, code, s.config.Reset.CodeExpiry); err != nil {
		s.log.Error("Failed to send reset code email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("send reset code email: %w", err)
	}

	s.log.Info("Reset code issued",
		zap.String("account_id", account.ID.String()),
		zap.Time("expires_at", record.ExpiresAt),
	)

	return nil
}

func (s *resetService) VerifyResetCode(ctx context.Context, email, code string) (string, error) {
	// 1. Existence
	record, err := s.repo.Reset.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", ErrResetNotFound
	}

	// 2. Match. A mismatch keeps the record so the user can retry until expiry.
	if subtle.ConstantTimeCompare([]byte(record.Code), []byte(code)) != 1 {
		return "", ErrCodeMismatch
	}

	// 3. Expiry. Detection consumes the record.
	if time.Now().After(record.ExpiresAt) {
		if err := s.repo.Reset.Delete(ctx, record.AccountID); err != nil {
			s.log.Warn("Failed to delete expired reset record", zap.Error(err))
		}
		return "", ErrCodeExpired
	}

	// 4. Consume atomically; a concurrent verifier may have won the race,
	// in which case the record is simply gone.
	consumed, err := s.repo.Reset.Consume(ctx, record.AccountID, code)
	if err != nil {
		return "", err
	}
	if !consumed {
		return "", ErrResetNotFound
	}

	tokenStr, err := s.signer.Issue(record.Email, record.AccountID.String())
	if err != nil {
		s.log.Error("Failed to issue exchange token", zap.Error(err))
		return "", err
	}

	s.log.Info("Reset code verified", zap.String("account_id", record.AccountID.String()))

	return tokenStr, nil
}

func (s *resetService) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	// 1. The exchange token is the sole proof of a verified code
	claims, err := s.signer.Validate(tokenStr)
	if err != nil {
		return err
	}

	accountID, err := uuid.Parse(claims.UID)
	if err != nil {
		s.log.Warn("Exchange token carried malformed account id", zap.Error(err))
		return token.ErrTokenInvalid
	}

	// 2. Commit the credential change
	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Account.UpdatePassword(ctx, accountID, passwordHash); err != nil {
		return err
	}

	// 3. Clean up any residual reset record. Best effort: a leftover record
	// is unusable once expired, so failure here is logged, not fatal.
	if err := s.repo.Reset.Delete(ctx, accountID); err != nil {
		s.log.Warn("Failed to clean up reset record after commit",
			zap.Error(err),
			zap.String("account_id", accountID.String()),
		)
	}

	s.log.Info("Password reset committed", zap.String("account_id", accountID.String()))

	return nil
}
