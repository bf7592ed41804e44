// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found, already
	// revoked, or already rotated by a concurrent refresh.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session row exists but has expired.
	ErrSessionExpired = errors.New("session has expired")
)

// SessionRepository defines the interface for refresh-token session management.
// All lookups are keyed by the SHA-256 hash of the raw refresh token, never the raw value.
// Expiry is enforced by filtering on read; no background sweep is required.
type SessionRepository interface {
	// Create persists a new session, representing one refresh-token grant.
	Create(ctx context.Context, session *entity.Session) error

	// FindByHash retrieves a session by its stored token hash, filtered to non-expired rows.
	FindByHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// FindByID retrieves a session by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindByPlayerID retrieves all non-expired sessions for a player, newest first.
	FindByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*entity.Session, error)

	// Rotate replaces the session's token hash and expiry in a single
	// conditional update keyed by (id, current hash). The row identity is
	// preserved for session auditing. If the row no longer exists or the hash
	// no longer matches (a concurrent refresh won the race), it returns
	// ErrSessionNotFound. This must be a compare-and-swap at the store level,
	// never a read-then-write.
	Rotate(ctx context.Context, id uuid.UUID, oldHash, newHash string, expiresAt time.Time) error

	// DeleteByHash removes a session by its token hash, ending that grant.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// Delete removes a session by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPlayerID removes all sessions for a player ("logout everywhere").
	DeleteByPlayerID(ctx context.Context, playerID uuid.UUID) error

	// DeleteByPlayerIDExcept removes all sessions for a player except the given one.
	DeleteByPlayerIDExcept(ctx context.Context, playerID, keepID uuid.UUID) error

	// DeleteExpired removes all expired sessions. Callers may run this
	// opportunistically; correctness never depends on it.
	DeleteExpired(ctx context.Context) error
}
