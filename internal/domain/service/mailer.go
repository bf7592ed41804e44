package service

import "context"

// ResetMailer delivers password-reset links. It is fire-and-forget at the
// usecase level: a delivery failure never rolls back token issuance.
type ResetMailer interface {
	// SendPasswordReset sends the reset link for the given token to the address.
	SendPasswordReset(ctx context.Context, email, token string) error
}
