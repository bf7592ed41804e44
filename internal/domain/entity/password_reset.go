// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is one entry in the single-use reset ledger.
// State machine per token: issued -> (used | expired), both terminal.
// Rows are never deleted; expiry and the used flag jointly gate validity.
type PasswordReset struct {
	ID        uuid.UUID // The unique ID for this ledger record.
	PlayerID  uuid.UUID // Links this reset grant to the Player it belongs to.
	Token     string    // The signed reset token as handed to the player.
	ExpiresAt time.Time // The exact time when this reset token expires.
	Used      bool      // Flipped exactly once, atomically with the password change.
	CreatedAt time.Time // Timestamp of when the reset was requested.
}
