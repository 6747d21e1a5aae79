package usecase

import (
	"context"
	"fmt"
	"time"

	"passify-auth/internal/data/entity"
	"passify-auth/internal/data/repository"
	"passify-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VerificationService handles the email-ownership check that gates the reset
// flow: a mailed one-time link that flips the account's verified flag.
type VerificationService interface {
	SendVerificationEmail(ctx context.Context, email string, accountID uuid.UUID) error
	VerifyEmail(ctx context.Context, token string) error
}

type verificationService struct {
	repo   *repository.Repository
	mail   Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewVerificationService(
	repo *repository.Repository,
	mail Mailer,
	config *utils.Config,
	log *zap.Logger,
) VerificationService {
	return &verificationService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *verificationService) SendVerificationEmail(ctx context.Context, email string, accountID uuid.UUID) error {
	now := time.Now()
	verification := &entity.EmailVerification{
		AccountID: accountID,
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(s.config.Reset.VerifyExpiry),
		CreatedAt: now,
	}

	if err := s.repo.Verification.Put(ctx, verification); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/email-verify?token=%s", s.config.App.BaseURL, verification.Token)

	if err := s.mail.SendVerificationLink(email, link); err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("send verification email: %w", err)
	}

	s.log.Info("Verification email sent",
		zap.String("account_id", accountID.String()),
		zap.Time("expires_at", verification.ExpiresAt),
	)

	return nil
}

func (s *verificationService) VerifyEmail(ctx context.Context, token string) error {
	verification, err := s.repo.Verification.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	if verification == nil {
		return ErrVerificationNotFound
	}

	if time.Now().After(verification.ExpiresAt) {
		return ErrVerificationExpired
	}

	if err := s.repo.Account.MarkVerified(ctx, verification.AccountID); err != nil {
		return err
	}

	// Consume the record so the link cannot be replayed
	if err := s.repo.Verification.Delete(ctx, verification.AccountID); err != nil {
		s.log.Warn("Failed to delete verification record",
			zap.Error(err),
			zap.String("account_id", verification.AccountID.String()),
		)
	}

	s.log.Info("Email verified", zap.String("account_id", verification.AccountID.String()))

	return nil
}
