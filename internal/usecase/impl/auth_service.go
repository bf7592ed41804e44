// Package impl provides the implementation of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/domain/service"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is a bcrypt hash of a throwaway string. Logins for
// unknown identifiers still run one bcrypt comparison against it, so a miss
// takes as long as a mismatch and response timing reveals nothing about
// which accounts exist.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	playerRepo   repository.PlayerRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	revoker      service.TokenRevoker
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PlayerRepo   repository.PlayerRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Revoker      service.TokenRevoker
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		playerRepo:   params.PlayerRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		revoker:      params.Revoker,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new player account and opens its first session.
// The uniqueness pre-check and the insert run in one transaction; the unique
// indexes remain the final arbiter when two registrations race.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Attempting to register player", slog.String("username", input.Username))

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	player := &entity.Player{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		playerRepo := repoFactory.PlayerRepo()

		if _, err := playerRepo.FindByEmailOrUsername(ctx, input.Email, input.Username); err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateAccount, "email or username already registered")
		} else if !errors.Is(err, repository.ErrPlayerNotFound) {
			return errors.Wrap(err, "failed to check for existing player")
		}

		if err := playerRepo.Create(ctx, player); err != nil {
			if errors.Is(err, repository.ErrPlayerExists) {
				// A concurrent registration won the unique index.
				return errors.Wrap(domainerrors.ErrDuplicateAccount, "email or username already registered")
			}

			return errors.Wrap(err, "failed to create player")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to register player", slog.Any("error", err))

		return nil, err
	}

	output, err := srv.openSession(ctx, player, input.Client)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Player registered successfully", slog.Any("playerID", player.ID))

	return output, nil
}

// Login verifies a player's credentials and opens a new session.
// Unknown identifiers and wrong passwords fail with the same error after the
// same amount of work.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Player login attempt")

	var player *entity.Player
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		playerRepo := repoFactory.PlayerRepo()

		found, err := playerRepo.FindByEmailOrUsername(ctx, input.Identifier, input.Identifier)
		if err != nil {
			if errors.Is(err, repository.ErrPlayerNotFound) {
				// Leave player nil; the caller burns a bcrypt comparison
				// before rejecting.
				return nil
			}

			return errors.Wrap(err, "failed to find player")
		}
		player = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load player for login", slog.Any("error", err))

		return nil, err
	}

	// The comparison runs outside the transaction; bcrypt must never hold a
	// database connection.
	if player == nil {
		srv.hasher.Check(input.Password, dummyPasswordHash)
		srv.log(ctx).Warn("Login failed: unknown identifier")

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown identifier")
	}

	if !srv.hasher.Check(input.Password, player.PasswordHash) {
		srv.log(ctx).Warn("Login failed: wrong password", slog.Any("playerID", player.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password")
	}

	output, err := srv.openSession(ctx, player, input.Client)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Player logged in successfully", slog.Any("playerID", player.ID))

	return output, nil
}

// Refresh exchanges a refresh token for a new token pair, rotating the
// session's stored hash in place. The conditional update keyed on the old
// hash makes each refresh token spendable exactly once.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	claims, err := srv.tokenService.Verify(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		srv.log(ctx).Warn("Refresh token failed verification", slog.Any("error", err))

		return nil, errors.Wrap(err, "refresh token failed verification")
	}

	oldHash := srv.tokenService.HashToken(input.RefreshToken)

	var output *usecase.TokenPairOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		session, err := sessionRepo.FindByHash(ctx, oldHash)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "refresh session not found")
			}

			return errors.Wrap(err, "failed to load session")
		}

		// A signed token naming another player's session is treated exactly
		// like a missing session.
		if session.PlayerID != claims.PlayerID {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "refresh session not found")
		}

		newRefreshToken, _, err := srv.tokenService.IssueRefreshToken(session.PlayerID)
		if err != nil {
			return errors.Wrap(err, "failed to issue refresh token")
		}

		expiresAt := time.Now().Add(srv.tokenService.RefreshTokenTTL())
		newHash := srv.tokenService.HashToken(newRefreshToken)

		if err := sessionRepo.Rotate(ctx, session.ID, oldHash, newHash, expiresAt); err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				// A concurrent refresh rotated the hash first; this token is spent.
				return errors.Wrap(domainerrors.ErrSessionNotFound, "refresh token already spent")
			}

			return errors.Wrap(err, "failed to rotate session")
		}

		accessToken, err := srv.tokenService.IssueAccessToken(session.PlayerID)
		if err != nil {
			return errors.Wrap(err, "failed to issue access token")
		}

		output = &usecase.TokenPairOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh token pair", slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Info("Token pair refreshed", slog.Any("playerID", claims.PlayerID))

	return output, nil
}

// Logout ends a session: the access token goes on the revocation list for
// its remaining lifetime and the session row is deleted. Stale or garbled
// tokens do not fail the call; logging out must always succeed.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	ttl := srv.tokenService.RemainingLifetime(input.AccessToken)
	if err := srv.revoker.Blacklist(ctx, input.AccessToken, ttl); err != nil {
		srv.log(ctx).Error("Failed to blacklist access token", slog.Any("error", err))

		return errors.Wrap(err, "failed to blacklist access token")
	}

	if _, err := srv.tokenService.Verify(input.RefreshToken, service.TokenTypeRefresh); err != nil {
		srv.log(ctx).Warn("Logout with unverifiable refresh token", slog.Any("error", err))
	}

	// Single delete - use direct repository instance. Deleting by hash is
	// idempotent, so repeated logouts are harmless.
	refreshHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.sessionRepo.DeleteByHash(ctx, refreshHash); err != nil {
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Player logged out")

	return nil
}

// CurrentPlayer loads the account behind an authenticated request.
func (srv *authService) CurrentPlayer(ctx context.Context, playerID uuid.UUID) (*entity.Player, error) {
	// Single query - use direct repository instance
	player, err := srv.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "player not found")
		}

		return nil, errors.Wrap(err, "failed to find player")
	}

	return player, nil
}

// openSession issues a token pair for the player and records the refresh
// grant. Only the hash of the refresh token is stored.
func (srv *authService) openSession(ctx context.Context, player *entity.Player, client usecase.ClientInfo) (*usecase.TokenPairOutput, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(player.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("playerID", player.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, _, err := srv.tokenService.IssueRefreshToken(player.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue refresh token", slog.Any("playerID", player.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	session := &entity.Session{
		PlayerID:  player.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenTTL()),
	}

	// Single insert - use direct repository instance
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.Any("playerID", player.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Player:       player,
	}, nil
}
