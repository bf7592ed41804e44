// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Player is the core identity in the system, representing one registered account.
// Email and username are both unique login identifiers.
type Player struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the player.
	Email        string    // The player's primary contact email, used as the login identifier.
	Username     string    // The player's unique display name.
	PasswordHash string    // Stores the bcrypt-hashed password. The raw password is never persisted.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
