// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one active refresh-token grant.
// It is the sole source of truth for whether a given refresh token is still
// live: a signed token whose session row has been deleted is dead.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record; exposed to callers as an opaque session id.
	PlayerID  uuid.UUID // Links this session to the Player it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token. The raw secret is never stored.
	UserAgent string    // Client metadata captured at login, for the "active sessions" view.
	IPAddress string    // Source address captured at login.
	ExpiresAt time.Time // The exact time when this refresh token expires and becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the player logged in).
}
