package impl

import (
	"context"
	"log/slog"

	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager   repository.TransactionManager
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:   params.TxManager,
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActiveSessions retrieves all non-expired sessions for a player, newest first.
func (srv *sessionService) ListActiveSessions(ctx context.Context, playerID uuid.UUID) ([]*entity.Session, error) {
	srv.log(ctx).Debug("Listing active sessions", slog.Any("playerID", playerID))

	// Single query operation - use direct repository instance
	sessions, err := srv.sessionRepo.FindByPlayerID(ctx, playerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list active sessions", slog.Any("error", err), slog.Any("playerID", playerID))

		return nil, errors.Wrap(err, "failed to list active sessions")
	}

	return sessions, nil
}

// RevokeSession terminates one specific session of the player.
func (srv *sessionService) RevokeSession(ctx context.Context, playerID, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to revoke session", slog.Any("playerID", playerID), slog.Any("sessionID", sessionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		// Verify the session belongs to the player before deleting.
		session, err := sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			// An expired row is as gone as a missing one.
			if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
				return errors.Wrap(domainerrors.ErrNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}

		if session.PlayerID != playerID {
			return errors.Wrap(domainerrors.ErrForbidden, "session does not belong to player")
		}

		if err := sessionRepo.Delete(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to revoke session", slog.Any("error", err), slog.Any("playerID", playerID), slog.Any("sessionID", sessionID))

		return errors.Wrap(err, "failed to revoke session")
	}
	srv.log(ctx).Info("Successfully revoked session", slog.Any("playerID", playerID), slog.Any("sessionID", sessionID))

	return nil
}

// RevokeAllSessions terminates every session of the player, optionally
// sparing the one the request came in on.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, playerID, exceptID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to revoke all sessions", slog.Any("playerID", playerID))

	var err error
	if exceptID == uuid.Nil {
		err = srv.sessionRepo.DeleteByPlayerID(ctx, playerID)
	} else {
		err = srv.sessionRepo.DeleteByPlayerIDExcept(ctx, playerID, exceptID)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.Any("error", err), slog.Any("playerID", playerID))

		return errors.Wrap(err, "failed to revoke all sessions")
	}
	srv.log(ctx).Info("Successfully revoked all sessions", slog.Any("playerID", playerID))

	return nil
}
