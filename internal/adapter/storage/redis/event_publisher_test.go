package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"voucher-settlement/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_PublishDisbursementFinalized(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	pub := NewEventPublisher(client, zerolog.Nop())
	ctx := context.Background()

	sub := client.Subscribe(ctx, FinalizedChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	ev := domain.DisbursementFinalized{
		VoucherCode:   "ABC123",
		TransactionID: "TXN-001",
		Status:        domain.DisbursementSettled,
		Amount:        2500000,
		Currency:      "PHP",
		FinalizedAt:   time.Now().UTC(),
	}
	require.NoError(t, pub.PublishDisbursementFinalized(ctx, ev))

	select {
	case msg := <-sub.Channel():
		var got domain.DisbursementFinalized
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "ABC123", got.VoucherCode)
		assert.Equal(t, domain.DisbursementSettled, got.Status)
		assert.Equal(t, int64(2500000), got.Amount)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received on channel")
	}
}
