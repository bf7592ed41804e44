package handler

import (
	"net/http"

	"arena/internal/delivery/http/response"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PasswordResetHandler holds dependencies for the password-reset flow.
type PasswordResetHandler struct {
	uc usecase.PasswordResetUsecase
}

// NewPasswordResetHandler is the constructor for PasswordResetHandler, injected by Fx.
func NewPasswordResetHandler(uc usecase.PasswordResetUsecase) *PasswordResetHandler {
	return &PasswordResetHandler{uc: uc}
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// ForgotPassword handles the request to start a password reset.
// The response is identical whether or not the email is registered.
func (h *PasswordResetHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RequestReset(c.Request().Context(), &usecase.RequestResetInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted,
		map[string]string{"message": "If the email is registered, a reset link has been sent"},
		"Password reset requested")
}

type verifyResetTokenResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
}

// VerifyResetToken handles the pre-flight check a reset form performs before
// showing the new-password fields. A rejected token answers 200 with
// valid=false; only store failures surface as errors.
func (h *PasswordResetHandler) VerifyResetToken(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Reset token is required")
	}

	valid, email, err := h.uc.VerifyResetToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	if !valid {
		return response.Success(c, http.StatusOK, verifyResetTokenResponse{Valid: false}, "Reset token is not valid")
	}

	return response.Success(c, http.StatusOK, verifyResetTokenResponse{Valid: true, Email: email}, "Reset token is valid")
}

// ResetPassword handles the request to complete a password reset.
func (h *PasswordResetHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password has been reset"}, "Password reset successful")
}
