package usecase

import "context"

// RequestResetInput defines the data required to start a password reset.
type RequestResetInput struct {
	Email string
}

// ResetPasswordInput defines the data required to complete a password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// PasswordResetUsecase defines the interface for the password-reset flow.
//
// RequestReset never discloses whether the email is registered; it succeeds
// either way and only sends mail when an account exists.
//
// VerifyResetToken answers the reset form's pre-flight check: a rejected
// token yields (false, "", nil), a live one yields (true, email, nil). The
// error return is reserved for store failures.
type PasswordResetUsecase interface {
	RequestReset(ctx context.Context, input *RequestResetInput) error
	VerifyResetToken(ctx context.Context, token string) (bool, string, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
