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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager    repository.TransactionManager
	playerRepo   repository.PlayerRepository
	resetRepo    repository.PasswordResetRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.ResetMailer
	logger       *slog.Logger
}

// PasswordResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PlayerRepo   repository.PlayerRepository
	ResetRepo    repository.PasswordResetRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.ResetMailer
	Logger       *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	return &passwordResetService{
		txManager:    params.TxManager,
		playerRepo:   params.PlayerRepo,
		resetRepo:    params.ResetRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset starts the password-reset flow for an email address.
// The outcome is identical whether or not the address is registered, so the
// endpoint cannot be used to probe for accounts.
func (srv *passwordResetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) error {
	srv.log(ctx).Info("Password reset requested")

	player, err := srv.playerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find player by email")
	}

	resetToken, err := srv.tokenService.IssuePasswordResetToken(player.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue password reset token", slog.Any("playerID", player.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to issue password reset token")
	}

	ledgerRecord := &entity.PasswordReset{
		PlayerID:  player.ID,
		Token:     resetToken,
		ExpiresAt: time.Now().Add(srv.tokenService.ResetTokenTTL()),
	}

	// Single insert - use direct repository instance
	if err := srv.resetRepo.Create(ctx, ledgerRecord); err != nil {
		srv.log(ctx).Error("Failed to record password reset", slog.Any("playerID", player.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to record password reset")
	}

	// Send the mail after the response; a slow or failing SMTP server must
	// not change what the caller observes.
	mailCtx := context.WithoutCancel(ctx)
	go func() {
		if err := srv.mailer.SendPasswordReset(mailCtx, player.Email, resetToken); err != nil {
			srv.logger.Error("Failed to send password reset email", slog.Any("playerID", player.ID), slog.Any("error", err))
		}
	}()

	srv.log(ctx).Debug("Password reset recorded", slog.Any("playerID", player.ID))

	return nil
}

// VerifyResetToken checks that a reset token is genuine, unexpired, and
// unconsumed. A rejected token is a normal outcome, not an error; the error
// return carries only store failures.
func (srv *passwordResetService) VerifyResetToken(ctx context.Context, token string) (bool, string, error) {
	ledgerRecord, err := srv.loadActiveReset(ctx, srv.resetRepo, token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidResetToken) {
			srv.log(ctx).Warn("Reset token verification failed", slog.Any("error", err))

			return false, "", nil
		}

		return false, "", errors.Wrap(err, "failed to verify reset token")
	}

	// The reset form pre-fills the email for the player.
	player, err := srv.playerRepo.FindByID(ctx, ledgerRecord.PlayerID)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			srv.log(ctx).Warn("Reset token refers to a missing player", slog.Any("playerID", ledgerRecord.PlayerID))

			return false, "", nil
		}

		return false, "", errors.Wrap(err, "failed to load player for reset token")
	}

	return true, player.Email, nil
}

// ResetPassword consumes a reset token and replaces the player's password.
// The password update and the used-flag flip commit atomically; a token that
// is spent concurrently fails here with the same error an invalid one gets.
func (srv *passwordResetService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Attempting password reset")

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during reset", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during reset")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		playerRepo := repoFactory.PlayerRepo()
		resetRepo := repoFactory.PasswordResetRepo()

		ledgerRecord, err := srv.loadActiveReset(ctx, resetRepo, input.Token)
		if err != nil {
			return err
		}

		if err := playerRepo.UpdatePassword(ctx, ledgerRecord.PlayerID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := resetRepo.MarkUsed(ctx, ledgerRecord.ID); err != nil {
			if errors.Is(err, repository.ErrResetAlreadyUsed) {
				// A concurrent reset consumed this token first.
				return errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token already used")
			}

			return errors.Wrap(err, "failed to mark reset token used")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute password reset transaction", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}
	srv.log(ctx).Info("Password reset completed")

	return nil
}

// loadActiveReset validates the token cryptographically, then checks the
// ledger. Every failure mode collapses into ErrInvalidResetToken so callers
// learn nothing about why a token was rejected.
func (srv *passwordResetService) loadActiveReset(ctx context.Context, resetRepo repository.PasswordResetRepository, token string) (*entity.PasswordReset, error) {
	claims, err := srv.tokenService.Verify(token, service.TokenTypePasswordReset)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token failed verification")
	}

	ledgerRecord, err := resetRepo.FindActiveByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrResetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token not recognized")
		}

		return nil, errors.Wrap(err, "failed to load reset record")
	}

	if ledgerRecord.PlayerID != claims.PlayerID {
		return nil, errors.Wrap(domainerrors.ErrInvalidResetToken, "reset token not recognized")
	}

	return ledgerRecord, nil
}
