package service

import (
	"context"
	"time"
)

// TokenRevoker records access tokens that must be rejected even though their
// signature and expiry are still valid. Entries live exactly as long as the
// token they block, so the list is bounded by the number of not-yet-expired
// revocations. This is the only way to cut a stateless token short.
type TokenRevoker interface {
	// Blacklist records the token for the given remaining lifetime.
	// A non-positive ttl is a no-op: the token is already dead on its own.
	Blacklist(ctx context.Context, token string, ttl time.Duration) error

	// IsBlacklisted reports whether the token has been revoked.
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
