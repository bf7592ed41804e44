package impl

import (
	"context"
	"testing"
	"time"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	mockRepo "arena/internal/mocks/repository"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	txManager   *mockRepo.MockTransactionManager
	sessionRepo *mockRepo.MockSessionRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)

	service := NewSessionService(SessionServiceParams{
		TxManager:   txManager,
		SessionRepo: sessionRepo,
		Logger:      newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:     service,
		txManager:   txManager,
		sessionRepo: sessionRepo,
	}
}

func TestSessionService_ListActiveSessions(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	playerID := uuid.New()
	sessions := []*entity.Session{
		{ID: uuid.New(), PlayerID: playerID, UserAgent: "phone", CreatedAt: time.Now()},
		{ID: uuid.New(), PlayerID: playerID, UserAgent: "laptop", CreatedAt: time.Now().Add(-time.Hour)},
	}

	fx.sessionRepo.EXPECT().FindByPlayerID(ctx, playerID).Return(sessions, nil)

	found, err := fx.service.ListActiveSessions(ctx, playerID)

	require.NoError(t, err)
	assert.Equal(t, sessions, found)
}

func TestSessionService_RevokeSession_Success(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	playerID := uuid.New()
	session := &entity.Session{ID: uuid.New(), PlayerID: playerID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)
			mockSessionRepo.EXPECT().Delete(ctx, session.ID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.RevokeSession(ctx, playerID, session.ID)

	assert.NoError(t, err)
}

func TestSessionService_RevokeSession_NotOwned(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	session := &entity.Session{ID: uuid.New(), PlayerID: uuid.New()}
	otherPlayerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, session.ID).Return(session, nil)

			return fn(mockFactory)
		})

	err := fx.service.RevokeSession(ctx, otherPlayerID, session.ID)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestSessionService_RevokeSession_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

			return fn(mockFactory)
		})

	err := fx.service.RevokeSession(ctx, uuid.New(), sessionID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSessionService_RevokeSession_Expired(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	sessionID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionExpired)

			return fn(mockFactory)
		})

	// A lapsed session reads the same as a missing one.
	err := fx.service.RevokeSession(ctx, uuid.New(), sessionID)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	playerID := uuid.New()

	fx.sessionRepo.EXPECT().DeleteByPlayerID(ctx, playerID).Return(nil)

	err := fx.service.RevokeAllSessions(ctx, playerID, uuid.Nil)

	assert.NoError(t, err)
}

func TestSessionService_RevokeAllSessions_KeepsCurrent(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	playerID := uuid.New()
	currentID := uuid.New()

	fx.sessionRepo.EXPECT().DeleteByPlayerIDExcept(ctx, playerID, currentID).Return(nil)

	err := fx.service.RevokeAllSessions(ctx, playerID, currentID)

	assert.NoError(t, err)
}
