package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"arena/internal/domain/service"
	"arena/internal/errors"

	"github.com/redis/go-redis/v9"
)

// blacklistKeyPrefix namespaces revocation entries in the shared cache.
const blacklistKeyPrefix = "blacklist:"

// tokenRevoker implements the TokenRevoker interface on Redis.
// Entries carry the remaining lifetime of the token they block as their TTL,
// so the list never outgrows the set of not-yet-expired revocations.
type tokenRevoker struct {
	client *redis.Client
}

// NewTokenRevoker is the constructor for tokenRevoker.
func NewTokenRevoker(client *redis.Client) service.TokenRevoker {
	return &tokenRevoker{client: client}
}

// Blacklist records the token for the given remaining lifetime.
func (r *tokenRevoker) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// The token is already past its natural expiry; nothing to block.
		return nil
	}

	if err := r.client.Set(ctx, blacklistKey(token), "1", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to blacklist token")
	}

	return nil
}

// IsBlacklisted reports whether the token has been revoked.
func (r *tokenRevoker) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	if err := r.client.Get(ctx, blacklistKey(token)).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check token blacklist")
	}

	return true, nil
}

// blacklistKey hashes the token so cache keys stay fixed-length and the raw
// bearer credential never lands in the cache.
func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))

	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}
