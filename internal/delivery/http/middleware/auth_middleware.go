package middleware

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "arena/internal/delivery/context"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// keyPlayerID is the echo.Context key holding the authenticated player's ID.
	keyPlayerID = "playerID"

	// keyAccessToken is the echo.Context key holding the raw bearer token.
	// Logout needs the raw token to size its blacklist entry.
	keyAccessToken = "accessToken"
)

// AuthMiddleware resolves the caller's identity from the Authorization header.
//
// WithAuthContext never judges a request by itself; a missing, malformed,
// revoked or otherwise invalid token simply resolves to anonymous, and guards
// like RequireAuthenticated decide whether anonymous is acceptable for a
// given route. The one exception is an unreachable revocation list, which is
// an infrastructure failure and propagates as an error.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	revoker  service.TokenRevoker
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, revoker service.TokenRevoker, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, revoker: revoker, logger: logger}
}

// WithAuthContext resolves the bearer token, if any, into an authenticated
// player on the request context. The revocation list is consulted before the
// signature check so a blacklisted token never counts as authenticated.
func (m *AuthMiddleware) WithAuthContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		revoked, err := m.revoker.IsBlacklisted(c.Request().Context(), tokenString)
		if err != nil {
			// An unreachable revocation list is an infrastructure failure,
			// not a verdict on the token. Surface it so the caller retries
			// instead of being silently demoted to anonymous.
			m.log(c.Request().Context()).Error("Revocation check failed", slog.Any("error", err))

			return errors.Wrap(err, "failed to consult token revocation list")
		}
		if revoked {
			return next(c)
		}

		claims, err := m.tokenSvc.Verify(tokenString, service.TokenTypeAccess)
		if err != nil {
			return next(c)
		}

		c.Set(keyPlayerID, claims.PlayerID)
		c.Set(keyAccessToken, tokenString)

		return next(c)
	}
}

// RequireAuthenticated rejects requests that did not resolve to a player.
// It must be used AFTER WithAuthContext.
func (m *AuthMiddleware) RequireAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := PlayerID(c); !ok {
			return domainerrors.ErrNotAuthenticated
		}

		return next(c)
	}
}

// PlayerID returns the authenticated player's ID stored by WithAuthContext.
func PlayerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyPlayerID).(uuid.UUID)

	return id, ok
}

// AccessToken returns the raw bearer token stored by WithAuthContext.
func AccessToken(c echo.Context) (string, bool) {
	token, ok := c.Get(keyAccessToken).(string)

	return token, ok && token != ""
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}

func (m *AuthMiddleware) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}
