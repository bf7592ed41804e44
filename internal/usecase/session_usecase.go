package usecase

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase defines the interface for managing a player's active sessions.
type SessionUsecase interface {
	ListActiveSessions(ctx context.Context, playerID uuid.UUID) ([]*entity.Session, error)
	RevokeSession(ctx context.Context, playerID, sessionID uuid.UUID) error
	// RevokeAllSessions terminates every session of the player except the one
	// identified by exceptID. Pass uuid.Nil to revoke all of them.
	RevokeAllSessions(ctx context.Context, playerID, exceptID uuid.UUID) error
}
