package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arena/internal/delivery/http/validator"
	"arena/internal/domain/entity"
	mockUC "arena/internal/mocks/usecase"
	"arena/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"email":"player@example.com","username":"player_one","password":"Password123!"}`)
	c.Request().Header.Set("User-Agent", "test-agent")

	player := &entity.Player{ID: uuid.New(), Email: "player@example.com", Username: "player_one"}
	uc.EXPECT().
		Register(c.Request().Context(), mock.AnythingOfType("*usecase.RegisterInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.RegisterInput) (*usecase.TokenPairOutput, error) {
			assert.Equal(t, "player@example.com", input.Email)
			assert.Equal(t, "player_one", input.Username)
			assert.Equal(t, "Password123!", input.Password)
			assert.Equal(t, "test-agent", input.Client.UserAgent)

			return &usecase.TokenPairOutput{
				AccessToken:  "access_token",
				RefreshToken: "refresh_token",
				Player:       player,
			}, nil
		})

	err := h.Register(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	assert.Contains(t, rec.Body.String(), "player_one")
	// The hash must never appear in a response body.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_RejectsInvalidEmail(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"email":"not-an-email","username":"player_one","password":"Password123!"}`)

	err := h.Register(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Register_RejectsShortPassword(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"email":"player@example.com","username":"player_one","password":"short"}`)

	err := h.Register(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"identifier":"player_one","password":"Password123!"}`)

	uc.EXPECT().
		Login(c.Request().Context(), mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.TokenPairOutput{
			AccessToken:  "access_token",
			RefreshToken: "refresh_token",
			Player:       &entity.Player{ID: uuid.New(), Username: "player_one"},
		}, nil)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "refresh_token")
}

func TestAuthHandler_Login_PropagatesUsecaseError(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, _ := newJSONContext(http.MethodPost, "/auth/login",
		`{"identifier":"player_one","password":"wrong"}`)

	uc.EXPECT().
		Login(c.Request().Context(), mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, assert.AnError)

	err := h.Login(c)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newJSONContext(http.MethodPost, "/auth/refresh",
		`{"refresh_token":"old_refresh_token"}`)

	uc.EXPECT().
		Refresh(c.Request().Context(), mock.AnythingOfType("*usecase.RefreshInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
			assert.Equal(t, "old_refresh_token", input.RefreshToken)

			return &usecase.TokenPairOutput{
				AccessToken:  "new_access_token",
				RefreshToken: "new_refresh_token",
			}, nil
		})

	err := h.Refresh(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new_access_token")
}

func TestAuthHandler_Logout_UsesVerifiedAccessToken(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout",
		`{"refresh_token":"refresh_token"}`)
	// Identity resolution has already vetted the bearer token and stored it
	// on the context; the handler never reads the raw header.
	c.Set("playerID", uuid.New())
	c.Set("accessToken", "access_token")

	uc.EXPECT().
		Logout(c.Request().Context(), mock.AnythingOfType("*usecase.LogoutInput")).
		RunAndReturn(func(ctx context.Context, input *usecase.LogoutInput) error {
			assert.Equal(t, "access_token", input.AccessToken)
			assert.Equal(t, "refresh_token", input.RefreshToken)

			return nil
		})

	err := h.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout",
		`{"refresh_token":"refresh_token"}`)
	// No resolved identity on the context means no proof of possession; the
	// usecase is never reached.
	err := h.Logout(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	playerID := uuid.New()
	c, rec := newJSONContext(http.MethodGet, "/auth/me", "")
	c.Set("playerID", playerID)

	uc.EXPECT().
		CurrentPlayer(c.Request().Context(), playerID).
		Return(&entity.Player{ID: playerID, Email: "player@example.com", Username: "player_one"}, nil)

	err := h.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "player@example.com")
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(uc)

	c, rec := newJSONContext(http.MethodGet, "/auth/me", "")

	err := h.Me(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
