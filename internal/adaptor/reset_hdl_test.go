package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passify-auth/internal/usecase"
	"passify-auth/pkg/token"
	"passify-auth/pkg/utils"

	"go.uber.org/zap"
)

// --- mocks ---

type mockResetService struct {
	requestResetFn    func(ctx context.Context, email string) error
	verifyResetCodeFn func(ctx context.Context, email, code string) (string, error)
	resetPasswordFn   func(ctx context.Context, tokenStr, newPassword string) error
}

func (m *mockResetService) RequestReset(ctx context.Context, email string) error {
	if m.requestResetFn != nil {
		return m.requestResetFn(ctx, email)
	}
	return nil
}

func (m *mockResetService) VerifyResetCode(ctx context.Context, email, code string) (string, error) {
	if m.verifyResetCodeFn != nil {
		return m.verifyResetCodeFn(ctx, email, code)
	}
	return "", nil
}

func (m *mockResetService) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	if m.resetPasswordFn != nil {
		return m.resetPasswordFn(ctx, tokenStr, newPassword)
	}
	return nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler(rec, req)

	var resp utils.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v (%s)", err, rec.Body.String())
	}

	return rec, resp
}

// --- ForgotPassword ---

func TestForgotPassword_Success(t *testing.T) {
	h := NewResetHandler(&mockResetService{}, zap.NewNop())

	rec, resp := postJSON(t, h.ForgotPassword, `{"email":"alice@example.com"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
}

func TestForgotPassword_UnknownEmailLooksIdentical(t *testing.T) {
	// The service returns nil for unknown emails; this pins down that the
	// handler body is identical to the known-account case.
	h := NewResetHandler(&mockResetService{}, zap.NewNop())

	recKnown, respKnown := postJSON(t, h.ForgotPassword, `{"email":"alice@example.com"}`)
	recUnknown, respUnknown := postJSON(t, h.ForgotPassword, `{"email":"ghost@example.com"}`)

	if recKnown.Code != recUnknown.Code {
		t.Errorf("status differs: %d vs %d", recKnown.Code, recUnknown.Code)
	}
	if respKnown.Message != respUnknown.Message || respKnown.Success != respUnknown.Success {
		t.Errorf("bodies differ: %+v vs %+v", respKnown, respUnknown)
	}
}

func TestForgotPassword_UnverifiedAccount(t *testing.T) {
	svc := &mockResetService{
		requestResetFn: func(_ context.Context, _ string) error {
			return usecase.ErrEmailNotVerified
		},
	}
	h := NewResetHandler(svc, zap.NewNop())

	rec, resp := postJSON(t, h.ForgotPassword, `{"email":"alice@example.com"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
	if !strings.Contains(resp.Message, "not verified") {
		t.Errorf("message = %q, want mention of verification", resp.Message)
	}
}

func TestForgotPassword_MissingEmail(t *testing.T) {
	h := NewResetHandler(&mockResetService{}, zap.NewNop())

	rec, _ := postJSON(t, h.ForgotPassword, `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestForgotPassword_ServiceFailure(t *testing.T) {
	svc := &mockResetService{
		requestResetFn: func(_ context.Context, _ string) error {
			return context.DeadlineExceeded
		},
	}
	h := NewResetHandler(svc, zap.NewNop())

	rec, resp := postJSON(t, h.ForgotPassword, `{"email":"alice@example.com"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if resp.Success {
		t.Error("success = true, want false")
	}
}

// --- VerifyResetCode ---

func TestVerifyResetCode_ReturnsToken(t *testing.T) {
	svc := &mockResetService{
		verifyResetCodeFn: func(_ context.Context, email, code string) (string, error) {
			if email != "alice@example.com" || code != "123456" {
				t.Errorf("service called with (%q, %q)", email, code)
			}
			return "signed-exchange-token", nil
		},
	}
	h := NewResetHandler(svc, zap.NewNop())

	rec, resp := postJSON(t, h.VerifyResetCode, `{"email":"alice@example.com","code":"123456"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if resp.Token != "signed-exchange-token" {
		t.Errorf("token = %q, want the issued token", resp.Token)
	}
}

func TestVerifyResetCode_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{"not found", usecase.ErrResetNotFound, http.StatusBadRequest, "Invalid or expired reset code."},
		{"mismatch", usecase.ErrCodeMismatch, http.StatusBadRequest, "Incorrect reset code."},
		{"expired", usecase.ErrCodeExpired, http.StatusBadRequest, "Reset code expired. Please request a new one."},
		{"missing secret", token.ErrNoSecret, http.StatusInternalServerError, "Server configuration error"},
		{"store failure", context.DeadlineExceeded, http.StatusInternalServerError, "Server error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockResetService{
				verifyResetCodeFn: func(_ context.Context, _, _ string) (string, error) {
					return "", tt.serviceErr
				},
			}
			h := NewResetHandler(svc, zap.NewNop())

			rec, resp := postJSON(t, h.VerifyResetCode, `{"email":"alice@example.com","code":"123456"}`)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMessage)
			}
			if resp.Token != "" {
				t.Error("token present in error response")
			}
		})
	}
}

func TestVerifyResetCode_RejectsMalformedCode(t *testing.T) {
	h := NewResetHandler(&mockResetService{}, zap.NewNop())

	for _, body := range []string{
		`{"email":"alice@example.com"}`,
		`{"code":"123456"}`,
		`{"email":"alice@example.com","code":"12345"}`,
		`{"email":"alice@example.com","code":"abcdef"}`,
	} {
		rec, _ := postJSON(t, h.VerifyResetCode, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

// --- ResetPassword ---

func TestResetPassword_Success(t *testing.T) {
	svc := &mockResetService{}
	h := NewResetHandler(svc, zap.NewNop())

	rec, resp := postJSON(t, h.ResetPassword,
		`{"token":"some-token","newPassword":"Str0ng!Passw0rd123"}`)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
}

func TestResetPassword_MissingFields(t *testing.T) {
	h := NewResetHandler(&mockResetService{}, zap.NewNop())

	for _, body := range []string{
		`{}`,
		`{"token":"some-token"}`,
		`{"newPassword":"Str0ng!Passw0rd123"}`,
	} {
		rec, _ := postJSON(t, h.ResetPassword, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestResetPassword_WeakPasswordRejectedBeforeService(t *testing.T) {
	called := false
	svc := &mockResetService{
		resetPasswordFn: func(_ context.Context, _, _ string) error {
			called = true
			return nil
		},
	}
	h := NewResetHandler(svc, zap.NewNop())

	rec, _ := postJSON(t, h.ResetPassword, `{"token":"some-token","newPassword":"weak"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if called {
		t.Error("service was called despite weak password")
	}
}

func TestResetPassword_TokenErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"invalid token", token.ErrTokenInvalid, http.StatusUnauthorized},
		{"expired token", token.ErrTokenExpired, http.StatusUnauthorized},
		{"missing secret", token.ErrNoSecret, http.StatusInternalServerError},
		{"provider failure", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockResetService{
				resetPasswordFn: func(_ context.Context, _, _ string) error {
					return tt.serviceErr
				},
			}
			h := NewResetHandler(svc, zap.NewNop())

			rec, resp := postJSON(t, h.ResetPassword,
				`{"token":"some-token","newPassword":"Str0ng!Passw0rd123"}`)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
		})
	}
}
