// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ClientInfo carries request metadata recorded alongside a session so
// players can recognise their own devices later.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// RegisterInput defines the data required to register a new player.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Client   ClientInfo
}

// LoginInput defines the data required for a player to log in.
// Identifier accepts either the email address or the username.
type LoginInput struct {
	Identifier string
	Password   string
	Client     ClientInfo
}

// RefreshInput defines the data required to rotate a refresh token.
type RefreshInput struct {
	RefreshToken string
	Client       ClientInfo
}

// LogoutInput defines the data required to terminate a session.
type LogoutInput struct {
	AccessToken  string
	RefreshToken string
}

// --- Output DTOs ---

// TokenPairOutput returns a freshly issued access/refresh token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
	Player       *entity.Player
}

// AuthUsecase defines the interface for credential-lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*TokenPairOutput, error)
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	CurrentPlayer(ctx context.Context, playerID uuid.UUID) (*entity.Player, error)
}
