package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"
	mockSvc "arena/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	revoker    *mockSvc.MockTokenRevoker
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	revoker := mockSvc.NewMockTokenRevoker(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, revoker, logger),
		tokenSvc:   tokenSvc,
		revoker:    revoker,
	}
}

func newTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_WithAuthContext_ValidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	playerID := uuid.New()
	c := newTestContext("Bearer good_token")

	fx.revoker.EXPECT().IsBlacklisted(c.Request().Context(), "good_token").Return(false, nil)
	fx.tokenSvc.EXPECT().
		Verify("good_token", service.TokenTypeAccess).
		Return(&service.Claims{PlayerID: playerID, Type: service.TokenTypeAccess}, nil)

	called := false
	err := fx.middleware.WithAuthContext(func(c echo.Context) error {
		called = true

		id, ok := PlayerID(c)
		assert.True(t, ok)
		assert.Equal(t, playerID, id)

		token, ok := AccessToken(c)
		assert.True(t, ok)
		assert.Equal(t, "good_token", token)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_WithAuthContext_MissingHeaderIsAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newTestContext("")

	err := fx.middleware.WithAuthContext(func(c echo.Context) error {
		_, ok := PlayerID(c)
		assert.False(t, ok)

		return nil
	})(c)

	assert.NoError(t, err)
}

func TestAuthMiddleware_WithAuthContext_MalformedHeaderIsAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	// Not a Bearer scheme; the revocation list is never consulted.
	c := newTestContext("Basic dXNlcjpwYXNz")

	err := fx.middleware.WithAuthContext(func(c echo.Context) error {
		_, ok := PlayerID(c)
		assert.False(t, ok)

		return nil
	})(c)

	assert.NoError(t, err)
}

func TestAuthMiddleware_WithAuthContext_BlacklistedTokenIsAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newTestContext("Bearer revoked_token")

	// The blacklist wins before any signature check runs.
	fx.revoker.EXPECT().IsBlacklisted(c.Request().Context(), "revoked_token").Return(true, nil)

	err := fx.middleware.WithAuthContext(func(c echo.Context) error {
		_, ok := PlayerID(c)
		assert.False(t, ok)

		return nil
	})(c)

	assert.NoError(t, err)
}

func TestAuthMiddleware_WithAuthContext_InvalidTokenIsAnonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newTestContext("Bearer bad_token")

	fx.revoker.EXPECT().IsBlacklisted(c.Request().Context(), "bad_token").Return(false, nil)
	fx.tokenSvc.EXPECT().
		Verify("bad_token", service.TokenTypeAccess).
		Return(nil, domainerrors.ErrInvalidToken)

	err := fx.middleware.WithAuthContext(func(c echo.Context) error {
		_, ok := PlayerID(c)
		assert.False(t, ok)

		return nil
	})(c)

	assert.NoError(t, err)
}

func TestAuthMiddleware_WithAuthContext_RevokerFailurePropagates(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newTestContext("Bearer some_token")

	fx.revoker.EXPECT().
		IsBlacklisted(c.Request().Context(), "some_token").
		Return(false, assert.AnError)

	err := fx.middleware.WithAuthContext(func(c echo.Context) error {
		t.Fatal("handler must not run when the revocation list is unreachable")

		return nil
	})(c)

	// The caller sees an infrastructure failure it can retry, not a silent
	// demotion to anonymous.
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthMiddleware_RequireAuthenticated(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newTestContext("")
	err := fx.middleware.RequireAuthenticated(func(c echo.Context) error {
		t.Fatal("handler must not run for anonymous requests")

		return nil
	})(c)

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	c = newTestContext("")
	c.Set(keyPlayerID, uuid.New())

	called := false
	err = fx.middleware.RequireAuthenticated(func(c echo.Context) error {
		called = true

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, called)
}
