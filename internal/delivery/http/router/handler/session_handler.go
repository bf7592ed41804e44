package handler

import (
	"net/http"
	"time"

	"arena/internal/delivery/http/middleware"
	"arena/internal/delivery/http/response"
	"arena/internal/domain/entity"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-management handlers.
// All routes require an authenticated player.
type SessionHandler struct {
	uc usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// sessionResponse is the outward view of an active session. The token hash
// stays server-side; the ID is the only handle callers get.
type sessionResponse struct {
	ID        uuid.UUID `json:"id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toSessionResponses(sessions []*entity.Session) []*sessionResponse {
	out := make([]*sessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, &sessionResponse{
			ID:        session.ID,
			UserAgent: session.UserAgent,
			IPAddress: session.IPAddress,
			CreatedAt: session.CreatedAt,
			ExpiresAt: session.ExpiresAt,
		})
	}

	return out
}

// List handles the request for the player's active sessions.
func (h *SessionHandler) List(c echo.Context) error {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	sessions, err := h.uc.ListActiveSessions(c.Request().Context(), playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionResponses(sessions), "Sessions retrieved successfully")
}

// Revoke handles the request to terminate one session by ID.
func (h *SessionHandler) Revoke(c echo.Context) error {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID")
	}

	if err := h.uc.RevokeSession(c.Request().Context(), playerID, sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Session revoked"}, "Session revoked successfully")
}

// RevokeAll handles the request to terminate every session of the player.
// An optional "except" query parameter names one session to keep, so a
// "sign out everywhere else" button does not cut off the caller's own device.
func (h *SessionHandler) RevokeAll(c echo.Context) error {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	exceptID := uuid.Nil
	if raw := c.QueryParam("except"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid session ID in except parameter")
		}
		exceptID = parsed
	}

	if err := h.uc.RevokeAllSessions(c.Request().Context(), playerID, exceptID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Sessions revoked"}, "Sessions revoked successfully")
}
