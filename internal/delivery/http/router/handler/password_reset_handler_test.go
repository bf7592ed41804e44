package handler

import (
	"net/http"
	"testing"

	domainerrors "arena/internal/domain/errors"
	mockUC "arena/internal/mocks/usecase"
	"arena/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordResetHandler_ForgotPassword(t *testing.T) {
	uc := mockUC.NewMockPasswordResetUsecase(t)
	h := NewPasswordResetHandler(uc)

	c, rec := newJSONContext(http.MethodPost, "/auth/forgot-password",
		`{"email":"player@example.com"}`)

	uc.EXPECT().
		RequestReset(c.Request().Context(), &usecase.RequestResetInput{Email: "player@example.com"}).
		Return(nil)

	err := h.ForgotPassword(c)

	require.NoError(t, err)
	// Accepted either way; the body never betrays whether the account exists.
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestPasswordResetHandler_ForgotPassword_RejectsInvalidEmail(t *testing.T) {
	uc := mockUC.NewMockPasswordResetUsecase(t)
	h := NewPasswordResetHandler(uc)

	c, _ := newJSONContext(http.MethodPost, "/auth/forgot-password",
		`{"email":"not-an-email"}`)

	err := h.ForgotPassword(c)

	assert.Error(t, err)
}

func TestPasswordResetHandler_VerifyResetToken(t *testing.T) {
	uc := mockUC.NewMockPasswordResetUsecase(t)
	h := NewPasswordResetHandler(uc)

	c, rec := newJSONContext(http.MethodGet, "/auth/reset-password?token=reset_token", "")

	uc.EXPECT().VerifyResetToken(c.Request().Context(), "reset_token").Return(true, "player@example.com", nil)

	err := h.VerifyResetToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// The reset form pre-fills the email from this response.
	assert.Contains(t, rec.Body.String(), `"valid":true`)
	assert.Contains(t, rec.Body.String(), `"email":"player@example.com"`)
}

func TestPasswordResetHandler_VerifyResetToken_InvalidToken(t *testing.T) {
	uc := mockUC.NewMockPasswordResetUsecase(t)
	h := NewPasswordResetHandler(uc)

	c, rec := newJSONContext(http.MethodGet, "/auth/reset-password?token=stale_token", "")

	uc.EXPECT().VerifyResetToken(c.Request().Context(), "stale_token").Return(false, "", nil)

	err := h.VerifyResetToken(c)

	// A rejected token is a normal answer for the form, not an HTTP failure.
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
	assert.NotContains(t, rec.Body.String(), "email")
}

func TestPasswordResetHandler_VerifyResetToken_StoreFailure(t *testing.T) {
	uc := mockUC.NewMockPasswordResetUsecase(t)
	h := NewPasswordResetHandler(uc)

	c, _ := newJSONContext(http.MethodGet, "/auth/reset-password?token=reset_token", "")

	storeErr := errors.New("ledger unreachable")
	uc.EXPECT().VerifyResetToken(c.Request().Context(), "reset_token").Return(false, "", storeErr)

	err := h.VerifyResetToken(c)

	assert.ErrorIs(t, err, storeErr)
}

func TestPasswordResetHandler_VerifyResetToken_MissingToken(t *testing.T) {
	uc := mockUC.NewMockPasswordResetUsecase(t)
	h := NewPasswordResetHandler(uc)

	c, rec := newJSONContext(http.MethodGet, "/auth/reset-password", "")

	err := h.VerifyResetToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPasswordResetHandler_ResetPassword(t *testing.T) {
	uc := mockUC.NewMockPasswordResetUsecase(t)
	h := NewPasswordResetHandler(uc)

	c, rec := newJSONContext(http.MethodPost, "/auth/reset-password",
		`{"token":"reset_token","new_password":"NewPassword123!"}`)

	uc.EXPECT().
		ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
			Token:       "reset_token",
			NewPassword: "NewPassword123!",
		}).
		Return(nil)

	err := h.ResetPassword(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPasswordResetHandler_ResetPassword_InvalidToken(t *testing.T) {
	uc := mockUC.NewMockPasswordResetUsecase(t)
	h := NewPasswordResetHandler(uc)

	c, _ := newJSONContext(http.MethodPost, "/auth/reset-password",
		`{"token":"spent_token","new_password":"NewPassword123!"}`)

	uc.EXPECT().
		ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
			Token:       "spent_token",
			NewPassword: "NewPassword123!",
		}).
		Return(domainerrors.ErrInvalidResetToken)

	err := h.ResetPassword(c)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidResetToken)
}
