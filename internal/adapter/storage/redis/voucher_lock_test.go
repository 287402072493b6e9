package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoucherLock_AcquireAndRelease(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewVoucherLock(client, zerolog.Nop())
	ctx := context.Background()

	release, ok, err := lock.Acquire(ctx, "ABC123", 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// Second acquire while held must fail.
	_, ok2, err := lock.Acquire(ctx, "ABC123", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok2)

	release()

	// Released: acquirable again.
	release3, ok3, err := lock.Acquire(ctx, "ABC123", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok3)
	release3()
}

func TestVoucherLock_IndependentVouchers(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewVoucherLock(client, zerolog.Nop())
	ctx := context.Background()

	r1, ok1, err := lock.Acquire(ctx, "ABC123", 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok1)
	defer r1()

	r2, ok2, err := lock.Acquire(ctx, "DEF456", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok2, "locks on different vouchers must not contend")
	defer r2()
}

func TestVoucherLock_ExpiredLockNotReleasedByOldHolder(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	lock := NewVoucherLock(client, zerolog.Nop())
	ctx := context.Background()

	releaseOld, ok, err := lock.Acquire(ctx, "ABC123", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	// TTL elapses and a new holder takes over.
	s.FastForward(2 * time.Second)
	releaseNew, ok2, err := lock.Acquire(ctx, "ABC123", 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok2)
	defer releaseNew()

	// The stale release must not free the new holder's lock.
	releaseOld()
	_, ok3, err := lock.Acquire(ctx, "ABC123", 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok3)
}
