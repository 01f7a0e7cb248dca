package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func fixedID(svc *Service) {
	svc.newID = func() string { return "user_fixed" }
}

func TestLoginAlwaysSucceeds(t *testing.T) {
	mr, rdb := setupRedis(t)
	svc := NewService(rdb, 0, time.Hour)
	fixedID(svc)

	user, token, err := svc.Login(context.Background(), "jane.doe@example.com", "anything", "")
	require.NoError(t, err)

	assert.Equal(t, "user_fixed", user.ID)
	assert.Equal(t, "jane.doe", user.Name)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.NotEmpty(t, token)

	stored, err := mr.Get(KeyPrefix + token)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"user_fixed","email":"jane.doe@example.com","name":"jane.doe"}`, stored)
	assert.Equal(t, time.Hour, mr.TTL(KeyPrefix+token))
}

func TestLoginIssuesDistinctUserIDs(t *testing.T) {
	svc := NewService(nil, 0, time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for range 200 {
		a, _, err := svc.Login(ctx, "alice@example.com", "", "")
		require.NoError(t, err)
		b, _, err := svc.Login(ctx, "bob@example.com", "", "")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(a.ID, "user_"))
		assert.NotEqual(t, a.ID, b.ID)
		assert.False(t, seen[a.ID], "id %s reused", a.ID)
		assert.False(t, seen[b.ID], "id %s reused", b.ID)
		seen[a.ID], seen[b.ID] = true, true
	}
}

func TestLoginKeepsGivenName(t *testing.T) {
	_, rdb := setupRedis(t)
	svc := NewService(rdb, 0, time.Hour)

	user, _, err := svc.Login(context.Background(), "sam@example.com", "", "Sam")
	require.NoError(t, err)
	assert.Equal(t, "Sam", user.Name)
}

func TestLoginWaitsForDelay(t *testing.T) {
	svc := NewService(nil, 30*time.Millisecond, time.Hour)

	start := time.Now()
	_, _, err := svc.Login(context.Background(), "a@b.c", "", "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestLoginCancelled(t *testing.T) {
	svc := NewService(nil, time.Minute, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.Login(ctx, "a@b.c", "", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCurrentAndLogout(t *testing.T) {
	_, rdb := setupRedis(t)
	svc := NewService(rdb, 0, time.Hour)
	ctx := context.Background()

	user, token, err := svc.Login(ctx, "kim@example.com", "", "")
	require.NoError(t, err)

	got, ok := svc.Current(ctx, token)
	require.True(t, ok)
	assert.Equal(t, user, got)

	require.NoError(t, svc.Logout(ctx, token))
	_, ok = svc.Current(ctx, token)
	assert.False(t, ok)

	// logging out twice is harmless
	assert.NoError(t, svc.Logout(ctx, token))
}

func TestCurrentUnknownToken(t *testing.T) {
	_, rdb := setupRedis(t)
	svc := NewService(rdb, 0, time.Hour)

	_, ok := svc.Current(context.Background(), "missing")
	assert.False(t, ok)
	_, ok = svc.Current(context.Background(), "")
	assert.False(t, ok)
}

func TestCurrentDeletesCorruptRecord(t *testing.T) {
	mr, rdb := setupRedis(t)
	svc := NewService(rdb, 0, time.Hour)
	require.NoError(t, mr.Set(KeyPrefix+"bad", "{not json"))

	_, ok := svc.Current(context.Background(), "bad")
	assert.False(t, ok)
	assert.False(t, mr.Exists(KeyPrefix+"bad"))
}

func TestSessionExpires(t *testing.T) {
	mr, rdb := setupRedis(t)
	svc := NewService(rdb, 0, time.Hour)
	ctx := context.Background()

	_, token, err := svc.Login(ctx, "kim@example.com", "", "")
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)
	_, ok := svc.Current(ctx, token)
	assert.False(t, ok)
}

func TestInMemoryFallback(t *testing.T) {
	svc := NewService(nil, 0, time.Hour)
	ctx := context.Background()

	user, token, err := svc.Login(ctx, "kim@example.com", "", "")
	require.NoError(t, err)

	got, ok := svc.Current(ctx, token)
	require.True(t, ok)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, svc.Logout(ctx, token))
	_, ok = svc.Current(ctx, token)
	assert.False(t, ok)
}
