// Package handler contains the HTTP handlers for the application.
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

// AuthHandler holds dependencies for credential-lifecycle handlers.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	// bcrypt only hashes the first 72 bytes, longer passwords are rejected
	// instead of silently truncated.
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	// Identifier accepts either the email address or the username.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// playerResponse is the outward view of a player. The password hash never
// leaves the domain layer.
type playerResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// tokenPairResponse carries a freshly issued credential pair.
type tokenPairResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Player       *playerResponse `json:"player,omitempty"`
}

func toPlayerResponse(player *entity.Player) *playerResponse {
	if player == nil {
		return nil
	}

	return &playerResponse{
		ID:        player.ID,
		Email:     player.Email,
		Username:  player.Username,
		CreatedAt: player.CreatedAt,
	}
}

func toTokenPairResponse(output *usecase.TokenPairOutput) *tokenPairResponse {
	return &tokenPairResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Player:       toPlayerResponse(output.Player),
	}
}

// clientInfo captures request metadata recorded alongside new sessions.
func clientInfo(c echo.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request().UserAgent(),
		IPAddress: c.RealIP(),
	}
}

// Register handles the player registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Client:   clientInfo(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTokenPairResponse(output), "Player registered successfully")
}

// Login handles the player login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
		Client:     clientInfo(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTokenPairResponse(output), "Login successful")
}

// Refresh handles the token rotation request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		RefreshToken: req.RefreshToken,
		Client:       clientInfo(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTokenPairResponse(output), "Token refreshed successfully")
}

// Logout handles the logout request. The route sits behind
// RequireAuthenticated, so the access token here has already survived the
// revocation list and signature checks.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	accessToken, ok := middleware.AccessToken(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	if err := h.uc.Logout(c.Request().Context(), &usecase.LogoutInput{
		AccessToken:  accessToken,
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// Me handles the request for the authenticated player's own account.
func (h *AuthHandler) Me(c echo.Context) error {
	playerID, ok := middleware.PlayerID(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authentication required")
	}

	player, err := h.uc.CurrentPlayer(c.Request().Context(), playerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlayerResponse(player), "Profile retrieved successfully")
}
