package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"voucher-settlement/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// FinalizedChannel carries disbursement finalization events to
// interested consumers (notification senders, reporting).
const FinalizedChannel = "settlement.disbursement.finalized"

// EventPublisher implements ports.EventPublisher over Redis pub/sub.
type EventPublisher struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewEventPublisher creates a Redis-backed event publisher.
func NewEventPublisher(client *goredis.Client, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{client: client, log: log}
}

// PublishDisbursementFinalized emits one finalization event as JSON.
func (p *EventPublisher) PublishDisbursementFinalized(ctx context.Context, ev domain.DisbursementFinalized) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal disbursement finalized event: %w", err)
	}

	if err := p.client.Publish(ctx, FinalizedChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish disbursement finalized event: %w", err)
	}

	p.log.Debug().
		Str("voucher", ev.VoucherCode).
		Str("status", string(ev.Status)).
		Msg("disbursement finalized event published")
	return nil
}
