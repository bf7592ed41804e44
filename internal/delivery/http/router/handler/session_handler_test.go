package handler

import (
	"net/http"
	"testing"
	"time"

	"arena/internal/domain/entity"
	mockUC "arena/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_List(t *testing.T) {
	uc := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc)

	playerID := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/sessions", "")
	c.Set("playerID", playerID)

	sessions := []*entity.Session{
		{
			ID:        uuid.New(),
			PlayerID:  playerID,
			TokenHash: "secret_hash",
			UserAgent: "test-agent",
			IPAddress: "203.0.113.7",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
	uc.EXPECT().ListActiveSessions(c.Request().Context(), playerID).Return(sessions, nil)

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test-agent")
	// The stored hash is server-side only.
	assert.NotContains(t, rec.Body.String(), "secret_hash")
}

func TestSessionHandler_List_Unauthenticated(t *testing.T) {
	uc := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc)

	c, rec := newJSONContext(http.MethodGet, "/sessions", "")

	err := h.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionHandler_Revoke(t *testing.T) {
	uc := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc)

	playerID := uuid.New()
	sessionID := uuid.New()
	c, rec := newJSONContext(http.MethodDelete, "/sessions/"+sessionID.String(), "")
	c.Set("playerID", playerID)
	c.SetParamNames("id")
	c.SetParamValues(sessionID.String())

	uc.EXPECT().RevokeSession(c.Request().Context(), playerID, sessionID).Return(nil)

	err := h.Revoke(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_Revoke_InvalidID(t *testing.T) {
	uc := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc)

	c, rec := newJSONContext(http.MethodDelete, "/sessions/not-a-uuid", "")
	c.Set("playerID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Revoke(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionHandler_RevokeAll(t *testing.T) {
	uc := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc)

	playerID := uuid.New()
	c, rec := newJSONContext(http.MethodDelete, "/sessions", "")
	c.Set("playerID", playerID)

	uc.EXPECT().RevokeAllSessions(c.Request().Context(), playerID, uuid.Nil).Return(nil)

	err := h.RevokeAll(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_RevokeAll_ExceptCurrent(t *testing.T) {
	uc := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(uc)

	playerID := uuid.New()
	keepID := uuid.New()
	c, rec := newJSONContext(http.MethodDelete, "/sessions?except="+keepID.String(), "")
	c.Set("playerID", playerID)

	uc.EXPECT().RevokeAllSessions(c.Request().Context(), playerID, keepID).Return(nil)

	err := h.RevokeAll(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
