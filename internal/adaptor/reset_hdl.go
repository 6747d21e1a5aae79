package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"passify-auth/internal/dto/request"
	"passify-auth/internal/usecase"
	"passify-auth/pkg/token"
	"passify-auth/pkg/utils"

	"go.uber.org/zap"
)

type ResetHandler struct {
	service usecase.ResetService
	log     *zap.Logger
}

func NewResetHandler(service usecase.ResetService, log *zap.Logger) *ResetHandler {
	return &ResetHandler{
		service: service,
		log:     log,
	}
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *ResetHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Email is required.", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Email is required.", validationErrors)
		return
	}

	if err := h.service.RequestReset(r.Context(), req.Email); err != nil {
		if errors.Is(err, usecase.ErrEmailNotVerified) {
			utils.ResponseBadRequest(w, "Email is not verified. Please verify your account.", nil)
			return
		}

		h.log.Error("Forgot password failed", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong.")
		return
	}

	// Same body whether or not the account exists.
	utils.ResponseSuccess(w, "Reset code sent to your email")
}

// VerifyResetCode handles POST /api/auth/verify-reset-code
func (h *ResetHandler) VerifyResetCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyResetCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Email and code are required.", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Email and code are required.", validationErrors)
		return
	}

	exchangeToken, err := h.service.VerifyResetCode(r.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResetNotFound):
			utils.ResponseBadRequest(w, "Invalid or expired reset code.", nil)
		case errors.Is(err, usecase.ErrCodeMismatch):
			utils.ResponseBadRequest(w, "Incorrect reset code.", nil)
		case errors.Is(err, usecase.ErrCodeExpired):
			utils.ResponseBadRequest(w, "Reset code expired. Please request a new one.", nil)
		case errors.Is(err, token.ErrNoSecret):
			h.log.Error("Verify reset code failed - signing secret missing", zap.Error(err))
			utils.ResponseInternalError(w, "Server configuration error")
		default:
			h.log.Error("Verify reset code failed", zap.Error(err))
			utils.ResponseInternalError(w, "Server error.")
		}
		return
	}

	utils.ResponseSuccessToken(w, "Reset code verified.", exchangeToken)
}

// ResetPassword handles POST /api/auth/reset-password
func (h *ResetHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Missing token or new password.", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Missing token or new password.", validationErrors)
		return
	}

	// Password policy is enforced here, before any token or store work.
	if err := utils.ValidatePasswordStrength(req.NewPassword); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, token.ErrTokenExpired), errors.Is(err, token.ErrTokenInvalid):
			utils.ResponseUnauthorized(w, "Invalid or expired reset token.")
		case errors.Is(err, token.ErrNoSecret):
			h.log.Error("Reset password failed - signing secret missing", zap.Error(err))
			utils.ResponseInternalError(w, "Server configuration error")
		default:
			h.log.Error("Reset password failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error.")
		}
		return
	}

	utils.ResponseSuccess(w, "Password updated successfully.")
}
