package request

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyResetCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type SendVerificationEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	UID   string `json:"uid" validate:"required,uuid"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}
