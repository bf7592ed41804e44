// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for the password-reset ledger.
var (
	// ErrResetNotFound is returned when no active ledger record matches the token.
	ErrResetNotFound = errors.New("password reset record not found")
	// ErrResetAlreadyUsed is returned when the conditional used-flag update
	// finds the record already consumed by a concurrent request.
	ErrResetAlreadyUsed = errors.New("password reset token already used")
)

// PasswordResetRepository defines the interface for the single-use reset ledger.
// Records are never deleted; they are kept for audit.
type PasswordResetRepository interface {
	// Create persists a new ledger record for an issued reset token.
	Create(ctx context.Context, reset *entity.PasswordReset) error

	// FindActiveByToken retrieves the ledger record for a token, filtered to
	// unused, unexpired rows. Missing, used, and expired records all surface
	// as ErrResetNotFound.
	FindActiveByToken(ctx context.Context, token string) (*entity.PasswordReset, error)

	// MarkUsed flips the used flag from false to true in a single conditional
	// update. If the record is already used it returns ErrResetAlreadyUsed,
	// so a second concurrent consumer loses deterministically.
	MarkUsed(ctx context.Context, id uuid.UUID) error
}
