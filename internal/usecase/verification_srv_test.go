package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"passify-auth/internal/data/entity"
	"passify-auth/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeVerificationRepo struct {
	records map[uuid.UUID]*entity.EmailVerification
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{records: make(map[uuid.UUID]*entity.EmailVerification)}
}

func (f *fakeVerificationRepo) Put(_ context.Context, verification *entity.EmailVerification) error {
	copied := *verification
	f.records[verification.AccountID] = &copied
	return nil
}

func (f *fakeVerificationRepo) FindByToken(_ context.Context, token string) (*entity.EmailVerification, error) {
	for _, verification := range f.records {
		if verification.Token == token {
			copied := *verification
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeVerificationRepo) Delete(_ context.Context, accountID uuid.UUID) error {
	delete(f.records, accountID)
	return nil
}

type linkMailer struct {
	sentLinks []string
}

func (m *linkMailer) SendResetCode(_, _ string, _ time.Duration) error { return nil }

func (m *linkMailer) SendVerificationLink(_, link string) error {
	m.sentLinks = append(m.sentLinks, link)
	return nil
}

func newTestVerificationService(
	accounts *mockAccountRepo,
	verifications *fakeVerificationRepo,
	mail *linkMailer,
) VerificationService {
	cfg := testConfig()
	cfg.App.BaseURL = "http://localhost:3000"
	repo := &repository.Repository{
		Account:      accounts,
		Verification: verifications,
	}
	return NewVerificationService(repo, mail, cfg, zap.NewNop())
}

func TestSendVerificationEmail_StoresTokenAndMailsLink(t *testing.T) {
	accountID := uuid.New()
	verifications := newFakeVerificationRepo()
	mail := &linkMailer{}
	svc := newTestVerificationService(&mockAccountRepo{}, verifications, mail)

	if err := svc.SendVerificationEmail(context.Background(), "alice@example.com", accountID); err != nil {
		t.Fatalf("SendVerificationEmail() error = %v", err)
	}

	verification := verifications.records[accountID]
	if verification == nil {
		t.Fatal("no verification record stored")
	}
	if _, err := uuid.Parse(verification.Token); err != nil {
		t.Errorf("stored token %q is not a uuid", verification.Token)
	}

	if len(mail.sentLinks) != 1 {
		t.Fatalf("got %d mailed links, want 1", len(mail.sentLinks))
	}
	wantLink := "http://localhost:3000/email-verify?token=" + verification.Token
	if mail.sentLinks[0] != wantLink {
		t.Errorf("mailed link = %q, want %q", mail.sentLinks[0], wantLink)
	}
	if !strings.Contains(mail.sentLinks[0], verification.Token) {
		t.Error("mailed link does not contain the stored token")
	}
}

func TestVerifyEmail_UnknownToken(t *testing.T) {
	svc := newTestVerificationService(&mockAccountRepo{}, newFakeVerificationRepo(), &linkMailer{})

	err := svc.VerifyEmail(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrVerificationNotFound) {
		t.Errorf("VerifyEmail() error = %v, want ErrVerificationNotFound", err)
	}
}

func TestVerifyEmail_ExpiredToken(t *testing.T) {
	accountID := uuid.New()
	verifications := newFakeVerificationRepo()
	verifications.Put(context.Background(), &entity.EmailVerification{
		AccountID: accountID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	svc := newTestVerificationService(&mockAccountRepo{}, verifications, &linkMailer{})

	err := svc.VerifyEmail(context.Background(), verifications.records[accountID].Token)
	if !errors.Is(err, ErrVerificationExpired) {
		t.Errorf("VerifyEmail() error = %v, want ErrVerificationExpired", err)
	}
}

func TestVerifyEmail_MarksAccountVerifiedAndConsumesToken(t *testing.T) {
	accountID := uuid.New()

	var markedID uuid.UUID
	accounts := &mockAccountRepo{
		markVerifiedFn: func(_ context.Context, id uuid.UUID) error {
			markedID = id
			return nil
		},
	}
	verifications := newFakeVerificationRepo()
	tokenStr := uuid.NewString()
	verifications.Put(context.Background(), &entity.EmailVerification{
		AccountID: accountID,
		Token:     tokenStr,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	svc := newTestVerificationService(accounts, verifications, &linkMailer{})

	if err := svc.VerifyEmail(context.Background(), tokenStr); err != nil {
		t.Fatalf("VerifyEmail() error = %v", err)
	}

	if markedID != accountID {
		t.Errorf("MarkVerified called with %v, want %v", markedID, accountID)
	}
	if len(verifications.records) != 0 {
		t.Error("verification record was not consumed")
	}
}
