// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"arena/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for player persistence.
var (
	// ErrPlayerNotFound is returned when no player matches the lookup key.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrPlayerExists is returned when a create collides with an existing email or username.
	ErrPlayerExists = errors.New("player already exists")
)

// PlayerRepository defines the interface for player account persistence.
type PlayerRepository interface {
	// Create persists a new player. Email and username collisions surface as ErrPlayerExists.
	Create(ctx context.Context, player *entity.Player) error

	// FindByID retrieves a single player by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Player, error)

	// FindByEmail retrieves a single player by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.Player, error)

	// FindByEmailOrUsername retrieves a player matching either identifier,
	// used for the duplicate-account check during registration.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.Player, error)

	// UpdatePassword replaces the player's password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
