package wire

import (
	"passify-auth/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, handler *adaptor.Handler) {
	// All reset-flow routes are public: the mailed code and the exchange
	// token are the credentials.
	r.Post("/api/auth/forgot-password", handler.Reset.ForgotPassword)
	r.Post("/api/auth/verify-reset-code", handler.Reset.VerifyResetCode)
	r.Post("/api/auth/reset-password", handler.Reset.ResetPassword)

	r.Post("/api/auth/send-verification-email", handler.Verification.SendVerificationEmail)
	r.Post("/api/auth/verify-email", handler.Verification.VerifyEmail)
}
