package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"passify-auth/internal/dto/request"
	"passify-auth/internal/usecase"
	"passify-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VerificationHandler struct {
	service usecase.VerificationService
	log     *zap.Logger
}

func NewVerificationHandler(service usecase.VerificationService, log *zap.Logger) *VerificationHandler {
	return &VerificationHandler{
		service: service,
		log:     log,
	}
}

// SendVerificationEmail handles POST /api/auth/send-verification-email
func (h *VerificationHandler) SendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	var req request.SendVerificationEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Missing email or userId", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing email or userId", validationErrors)
		return
	}

	accountID, err := uuid.Parse(req.UID)
	if err != nil {
		utils.ResponseBadRequest(w, "Missing email or userId", nil)
		return
	}

	if err := h.service.SendVerificationEmail(r.Context(), req.Email, accountID); err != nil {
		h.log.Error("Send verification email failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to send verification email")
		return
	}

	utils.ResponseSuccess(w, "Verification email sent.")
}

// VerifyEmail handles POST /api/auth/verify-email
func (h *VerificationHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid verification link", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid verification link", validationErrors)
		return
	}

	if err := h.service.VerifyEmail(r.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, usecase.ErrVerificationNotFound):
			utils.ResponseBadRequest(w, "Invalid or expired token", nil)
		case errors.Is(err, usecase.ErrVerificationExpired):
			utils.ResponseBadRequest(w, "Link expired", nil)
		default:
			h.log.Error("Verify email failed", zap.Error(err))
			utils.ResponseInternalError(w, "Server error")
		}
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully.")
}
