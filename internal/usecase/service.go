package usecase

import (
	"time"

	"passify-auth/internal/data/repository"
	"passify-auth/pkg/token"
	"passify-auth/pkg/utils"

	"go.uber.org/zap"
)

// Mailer is the outbound email collaborator. Implemented by pkg/mailer;
// faked in tests.
type Mailer interface {
	SendResetCode(to, code string, expiresIn time.Duration) error
	SendVerificationLink(to, link string) error
}

// TokenSigner issues and validates exchange tokens. Implemented by pkg/token.
type TokenSigner interface {
	Issue(email, uid string) (string, error)
	Validate(tokenStr string) (*token.ResetClaims, error)
}

type Service struct {
	Reset        ResetService
	Verification VerificationService
}

func NewService(
	repo *repository.Repository,
	signer TokenSigner,
	mail Mailer,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Reset:        NewResetService(repo, signer, mail, config, log),
		Verification: NewVerificationService(repo, mail, config, log),
	}
}
