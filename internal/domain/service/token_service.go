package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenType discriminates the three token classes issued by this service.
// All classes share a signing key; the type claim is what keeps them from
// being interchangeable.
type TokenType string

const (
	// TokenTypeAccess is the short-lived bearer credential authorizing individual requests.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh is the long-lived credential exchanged for a new token pair.
	TokenTypeRefresh TokenType = "refresh"
	// TokenTypePasswordReset is the single-use credential for the reset flow.
	TokenTypePasswordReset TokenType = "password_reset"
)

// Claims is the verified content of a token.
type Claims struct {
	PlayerID uuid.UUID // The subject the token was issued for.
	Type     TokenType // The token class, checked against the caller's expectation.
	TokenID  string    // The jti nonce; set only on refresh tokens.
	IssuedAt time.Time
	ExpireAt time.Time
}

// TokenService defines the interface for issuing and verifying signed, time-bounded tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueAccessToken signs a short-lived access token for the player.
	IssueAccessToken(playerID uuid.UUID) (string, error)

	// IssueRefreshToken signs a long-lived refresh token carrying a fresh jti
	// nonce, so two refresh tokens for the same player are distinguishable
	// without decoding the secret. Returns the token and the nonce.
	IssueRefreshToken(playerID uuid.UUID) (token string, tokenID string, err error)

	// IssuePasswordResetToken signs a reset token with a 24h lifetime.
	IssuePasswordResetToken(playerID uuid.UUID) (string, error)

	// Verify checks signature, expiry, and the type claim. A structurally
	// valid token of the wrong type fails with ErrInvalidToken; a valid
	// signature past its expiry fails with ErrExpiredToken.
	Verify(token string, expected TokenType) (*Claims, error)

	// HashToken returns the SHA-256 hex digest of a raw token, used as the
	// session lookup key and the blacklist key.
	HashToken(token string) string

	// RemainingLifetime reports how long until the token's embedded expiry,
	// or zero if the token is unparsable or already expired. It does not
	// verify the signature; callers use it only to size revocation entries.
	RemainingLifetime(token string) time.Duration

	// AccessTokenTTL returns the configured access-token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh-token lifetime.
	RefreshTokenTTL() time.Duration

	// ResetTokenTTL returns the configured password-reset-token lifetime.
	ResetTokenTTL() time.Duration
}
