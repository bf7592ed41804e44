package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/domain/service"
	mockRepo "arena/internal/mocks/repository"
	mockSvc "arena/internal/mocks/service"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	playerRepo   *mockRepo.MockPlayerRepository
	sessionRepo  *mockRepo.MockSessionRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	revoker      *mockSvc.MockTokenRevoker
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	playerRepo := mockRepo.NewMockPlayerRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	revoker := mockSvc.NewMockTokenRevoker(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		PlayerRepo:   playerRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Revoker:      revoker,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      service,
		txManager:    txManager,
		playerRepo:   playerRepo,
		sessionRepo:  sessionRepo,
		hasher:       hasher,
		tokenService: tokenService,
		revoker:      revoker,
	}
}

// expectOpenSession wires the token issuance and session insert that follow a
// successful registration or login.
func expectOpenSession(fx authServiceFixtures, ctx context.Context, playerID uuid.UUID) {
	fx.tokenService.EXPECT().IssueAccessToken(playerID).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefreshToken(playerID).Return("refresh_token", uuid.New().String(), nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().RefreshTokenTTL().Return(30 * 24 * time.Hour)

	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			session.ID = uuid.New()
		}).
		Return(nil)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "player@example.com",
		Username: "player_one",
		Password: "Password123!",
		Client:   usecase.ClientInfo{UserAgent: "test-agent", IPAddress: "203.0.113.7"},
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	var playerID uuid.UUID
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlayerRepo := mockRepo.NewMockPlayerRepository(t)

			mockFactory.EXPECT().PlayerRepo().Return(mockPlayerRepo)

			mockPlayerRepo.EXPECT().
				FindByEmailOrUsername(ctx, input.Email, input.Username).
				Return(nil, repository.ErrPlayerNotFound)

			mockPlayerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Player")).
				Run(func(ctx context.Context, player *entity.Player) {
					player.ID = uuid.New()
					playerID = player.ID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().IssueAccessToken(mock.AnythingOfType("uuid.UUID")).Return("access_token", nil)
	fx.tokenService.EXPECT().IssueRefreshToken(mock.AnythingOfType("uuid.UUID")).Return("refresh_token", uuid.New().String(), nil)
	fx.tokenService.EXPECT().HashToken("refresh_token").Return("refresh_token_hash")
	fx.tokenService.EXPECT().RefreshTokenTTL().Return(30 * 24 * time.Hour)
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, playerID, session.PlayerID)
			assert.Equal(t, "refresh_token_hash", session.TokenHash)
			assert.Equal(t, "test-agent", session.UserAgent)
			assert.Equal(t, "203.0.113.7", session.IPAddress)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, input.Email, output.Player.Email)
	assert.Equal(t, "hashed_password", output.Player.PasswordHash)
}

func TestAuthService_Register_DuplicateAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Username: "taken",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlayerRepo := mockRepo.NewMockPlayerRepository(t)

			mockFactory.EXPECT().PlayerRepo().Return(mockPlayerRepo)

			mockPlayerRepo.EXPECT().
				FindByEmailOrUsername(ctx, input.Email, input.Username).
				Return(&entity.Player{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestAuthService_Register_UniqueIndexRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "racer@example.com",
		Username: "racer",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlayerRepo := mockRepo.NewMockPlayerRepository(t)

			mockFactory.EXPECT().PlayerRepo().Return(mockPlayerRepo)

			// The pre-check misses, but the insert hits the unique index
			// because a concurrent registration got there first.
			mockPlayerRepo.EXPECT().
				FindByEmailOrUsername(ctx, input.Email, input.Username).
				Return(nil, repository.ErrPlayerNotFound)
			mockPlayerRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Player")).
				Return(repository.ErrPlayerExists)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAccount)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	player := &entity.Player{
		ID:           uuid.New(),
		Email:        "player@example.com",
		Username:     "player_one",
		PasswordHash: "stored_hash",
	}
	input := &usecase.LoginInput{
		Identifier: "player_one",
		Password:   "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlayerRepo := mockRepo.NewMockPlayerRepository(t)

			mockFactory.EXPECT().PlayerRepo().Return(mockPlayerRepo)
			mockPlayerRepo.EXPECT().
				FindByEmailOrUsername(ctx, input.Identifier, input.Identifier).
				Return(player, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
	expectOpenSession(fx, ctx, player.ID)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, player, output.Player)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	player := &entity.Player{ID: uuid.New(), PasswordHash: "stored_hash"}
	input := &usecase.LoginInput{Identifier: "player_one", Password: "wrong"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlayerRepo := mockRepo.NewMockPlayerRepository(t)

			mockFactory.EXPECT().PlayerRepo().Return(mockPlayerRepo)
			mockPlayerRepo.EXPECT().
				FindByEmailOrUsername(ctx, input.Identifier, input.Identifier).
				Return(player, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownIdentifierBurnsHash(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Identifier: "ghost", Password: "whatever"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPlayerRepo := mockRepo.NewMockPlayerRepository(t)

			mockFactory.EXPECT().PlayerRepo().Return(mockPlayerRepo)
			mockPlayerRepo.EXPECT().
				FindByEmailOrUsername(ctx, input.Identifier, input.Identifier).
				Return(nil, repository.ErrPlayerNotFound)

			return fn(mockFactory)
		})

	// The dummy comparison must run so misses cost the same as mismatches.
	fx.hasher.EXPECT().Check(input.Password, dummyPasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	playerID := uuid.New()
	session := &entity.Session{ID: uuid.New(), PlayerID: playerID, TokenHash: "old_hash"}
	input := &usecase.RefreshInput{RefreshToken: "old_refresh_token"}

	fx.tokenService.EXPECT().
		Verify(input.RefreshToken, service.TokenTypeRefresh).
		Return(&service.Claims{PlayerID: playerID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("old_hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)

			mockSessionRepo.EXPECT().FindByHash(ctx, "old_hash").Return(session, nil)

			fx.tokenService.EXPECT().IssueRefreshToken(playerID).Return("new_refresh_token", uuid.New().String(), nil)
			fx.tokenService.EXPECT().RefreshTokenTTL().Return(30 * 24 * time.Hour)
			fx.tokenService.EXPECT().HashToken("new_refresh_token").Return("new_hash")

			mockSessionRepo.EXPECT().
				Rotate(ctx, session.ID, "old_hash", "new_hash", mock.AnythingOfType("time.Time")).
				Return(nil)

			fx.tokenService.EXPECT().IssueAccessToken(playerID).Return("new_access_token", nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Refresh(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new_access_token", output.AccessToken)
	assert.Equal(t, "new_refresh_token", output.RefreshToken)
}

func TestAuthService_Refresh_UnknownToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "revoked_refresh_token"}

	fx.tokenService.EXPECT().
		Verify(input.RefreshToken, service.TokenTypeRefresh).
		Return(&service.Claims{PlayerID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("revoked_hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				FindByHash(ctx, "revoked_hash").
				Return(nil, repository.ErrSessionNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Refresh(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestAuthService_Refresh_LosesRotationRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	playerID := uuid.New()
	session := &entity.Session{ID: uuid.New(), PlayerID: playerID, TokenHash: "old_hash"}
	input := &usecase.RefreshInput{RefreshToken: "double_spent_token"}

	fx.tokenService.EXPECT().
		Verify(input.RefreshToken, service.TokenTypeRefresh).
		Return(&service.Claims{PlayerID: playerID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("old_hash")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByHash(ctx, "old_hash").Return(session, nil)

			fx.tokenService.EXPECT().IssueRefreshToken(playerID).Return("new_refresh_token", uuid.New().String(), nil)
			fx.tokenService.EXPECT().RefreshTokenTTL().Return(30 * 24 * time.Hour)
			fx.tokenService.EXPECT().HashToken("new_refresh_token").Return("new_hash")

			// The conditional update finds no row: a concurrent refresh
			// rotated the hash between the read and the swap.
			mockSessionRepo.EXPECT().
				Rotate(ctx, session.ID, "old_hash", "new_hash", mock.AnythingOfType("time.Time")).
				Return(repository.ErrSessionNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Refresh(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RefreshInput{RefreshToken: "actually_an_access_token"}

	fx.tokenService.EXPECT().
		Verify(input.RefreshToken, service.TokenTypeRefresh).
		Return(nil, domainerrors.ErrInvalidToken)

	output, err := fx.service.Refresh(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{
		AccessToken:  "access_token",
		RefreshToken: "refresh_token",
	}

	fx.tokenService.EXPECT().RemainingLifetime(input.AccessToken).Return(5 * time.Minute)
	fx.revoker.EXPECT().Blacklist(ctx, input.AccessToken, 5*time.Minute).Return(nil)

	fx.tokenService.EXPECT().
		Verify(input.RefreshToken, service.TokenTypeRefresh).
		Return(&service.Claims{PlayerID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("refresh_hash")
	fx.sessionRepo.EXPECT().DeleteByHash(ctx, "refresh_hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	assert.NoError(t, err)
}

func TestAuthService_Logout_ToleratesInvalidRefreshToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LogoutInput{
		AccessToken:  "access_token",
		RefreshToken: "garbage",
	}

	fx.tokenService.EXPECT().RemainingLifetime(input.AccessToken).Return(time.Minute)
	fx.revoker.EXPECT().Blacklist(ctx, input.AccessToken, time.Minute).Return(nil)

	fx.tokenService.EXPECT().
		Verify(input.RefreshToken, service.TokenTypeRefresh).
		Return(nil, domainerrors.ErrInvalidToken)
	fx.tokenService.EXPECT().HashToken(input.RefreshToken).Return("garbage_hash")
	fx.sessionRepo.EXPECT().DeleteByHash(ctx, "garbage_hash").Return(nil)

	err := fx.service.Logout(ctx, input)

	// Logging out with a stale token must still succeed.
	assert.NoError(t, err)
}

func TestAuthService_CurrentPlayer(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	player := &entity.Player{ID: uuid.New(), Email: "player@example.com"}

	fx.playerRepo.EXPECT().FindByID(ctx, player.ID).Return(player, nil)

	found, err := fx.service.CurrentPlayer(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, player, found)

	missingID := uuid.New()
	fx.playerRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrPlayerNotFound)

	found, err = fx.service.CurrentPlayer(ctx, missingID)
	assert.Nil(t, found)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
