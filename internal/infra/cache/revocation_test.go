package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRevoker(t *testing.T) (*miniredis.Miniredis, *tokenRevoker) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, &tokenRevoker{client: client}
}

func TestTokenRevoker_BlacklistAndCheck(t *testing.T) {
	_, revoker := newTestRevoker(t)
	ctx := context.Background()

	blocked, err := revoker.IsBlacklisted(ctx, "some.access.token")
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, revoker.Blacklist(ctx, "some.access.token", time.Minute))

	blocked, err = revoker.IsBlacklisted(ctx, "some.access.token")
	require.NoError(t, err)
	assert.True(t, blocked)

	// Other tokens stay unaffected.
	blocked, err = revoker.IsBlacklisted(ctx, "another.access.token")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestTokenRevoker_EntryExpiresWithTokenLifetime(t *testing.T) {
	mr, revoker := newTestRevoker(t)
	ctx := context.Background()

	require.NoError(t, revoker.Blacklist(ctx, "short.lived.token", time.Minute))

	mr.FastForward(2 * time.Minute)

	blocked, err := revoker.IsBlacklisted(ctx, "short.lived.token")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestTokenRevoker_SkipsAlreadyExpiredTokens(t *testing.T) {
	_, revoker := newTestRevoker(t)
	ctx := context.Background()

	require.NoError(t, revoker.Blacklist(ctx, "dead.token", 0))
	require.NoError(t, revoker.Blacklist(ctx, "dead.token", -time.Second))

	blocked, err := revoker.IsBlacklisted(ctx, "dead.token")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestTokenRevoker_KeysAreHashed(t *testing.T) {
	mr, revoker := newTestRevoker(t)

	require.NoError(t, revoker.Blacklist(context.Background(), "raw.bearer.token", time.Minute))

	// The raw credential must never appear as a cache key.
	assert.False(t, mr.Exists(blacklistKeyPrefix+"raw.bearer.token"))
	assert.True(t, mr.Exists(blacklistKey("raw.bearer.token")))
}
