package notify

import (
	"context"
	"fmt"

	"voucher-settlement/internal/core/domain"
	"voucher-settlement/internal/core/ports"
	"voucher-settlement/pkg/money"

	"github.com/rs/zerolog"
)

// Router dispatches each alert to the notifier registered for its
// channel. Channels without a notifier fall through to the log notifier
// so an alert is never silently dropped.
type Router struct {
	byChannel map[domain.AlertChannel]ports.AlertNotifier
	fallback  ports.AlertNotifier
}

// NewRouter creates a channel-dispatching notifier.
func NewRouter(log zerolog.Logger) *Router {
	logNotifier := NewLogNotifier(log)
	return &Router{
		byChannel: map[domain.AlertChannel]ports.AlertNotifier{
			domain.AlertChannelWebhook: NewWebhookNotifier(log),
			// Email and SMS delivery belong to an external collaborator;
			// until it is wired those channels log.
			domain.AlertChannelEmail: logNotifier,
			domain.AlertChannelSMS:   logNotifier,
		},
		fallback: logNotifier,
	}
}

// Register installs or replaces the notifier for one channel.
func (r *Router) Register(channel domain.AlertChannel, n ports.AlertNotifier) {
	r.byChannel[channel] = n
}

// Notify dispatches to the alert's channel.
func (r *Router) Notify(ctx context.Context, alert domain.BalanceAlert, balance *domain.AccountBalance) error {
	if n, ok := r.byChannel[alert.Channel]; ok {
		return n.Notify(ctx, alert, balance)
	}
	return r.fallback.Notify(ctx, alert, balance)
}

// LogNotifier implements ports.AlertNotifier by writing a structured
// warning. Used for channels whose delivery is handled elsewhere.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a log-only alert notifier.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify records the alert.
func (n *LogNotifier) Notify(_ context.Context, alert domain.BalanceAlert, balance *domain.AccountBalance) error {
	n.log.Warn().
		Str("channel", string(alert.Channel)).
		Strs("recipients", alert.Recipients).
		Str("account", balance.AccountNumber).
		Str("balance", money.FormatPHP(balance.Balance)).
		Str("threshold", money.FormatPHP(alert.Threshold)).
		Msg(fmt.Sprintf("low balance alert: %s below %s",
			money.FormatPHP(balance.Balance), money.FormatPHP(alert.Threshold)))
	return nil
}
