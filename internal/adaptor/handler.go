package adaptor

import (
	"passify-auth/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Reset        *ResetHandler
	Verification *VerificationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Reset:        NewResetHandler(service.Reset, log),
		Verification: NewVerificationHandler(service.Verification, log),
	}
}
