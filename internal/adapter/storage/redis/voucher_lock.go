package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// releaseScript deletes the lock only when the stored token matches, so
// an expired lock reacquired by another poller is never released by the
// original holder.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// VoucherLock implements ports.VoucherLocker with SET NX and a TTL.
type VoucherLock struct {
	client *goredis.Client
	prefix string
	log    zerolog.Logger
}

// NewVoucherLock creates a Redis-backed voucher lock.
func NewVoucherLock(client *goredis.Client, log zerolog.Logger) *VoucherLock {
	return &VoucherLock{
		client: client,
		prefix: "voucher:status-lock:",
		log:    log,
	}
}

// Acquire takes the per-voucher lock. Returns ok=false when another
// holder owns it. The returned release func is safe to call after the
// TTL expired.
func (l *VoucherLock) Acquire(ctx context.Context, voucherCode string, ttl time.Duration) (func(), bool, error) {
	key := l.prefix + voucherCode
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis voucher lock acquire: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// A fresh context: the caller's may already be cancelled.
		rctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := l.client.Eval(rctx, releaseScript, []string{key}, token).Err(); err != nil {
			l.log.Warn().Err(err).Str("voucher", voucherCode).Msg("voucher lock release failed")
		}
	}
	return release, true, nil
}
