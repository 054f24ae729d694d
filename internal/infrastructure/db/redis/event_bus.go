package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
	"github.com/identora/account-system/internal/metrics"
)

const defaultChannel = "account-events"

// EventBus publishes account events to a Redis channel as JSON envelopes.
// Password material never enters the envelope.
type EventBus struct {
	client  *redis.Client
	channel string
}

var _ ports.EventBus = (*EventBus)(nil)

// NewEventBus wraps client as an EventBus. An empty channel selects the
// default "account-events".
func NewEventBus(client *redis.Client, channel string) *EventBus {
	if channel == "" {
		channel = defaultChannel
	}
	return &EventBus{client: client, channel: channel}
}

type envelope struct {
	Event string `json:"event"`
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	At    int64  `json:"at"`
}

func (b *EventBus) Publish(ctx context.Context, event domain.Event) error {
	env := envelope{Event: event.EventName(), At: event.OccurredAt().Unix()}
	if ae, ok := event.(domain.AccountEvent); ok {
		account := ae.TriggeredBy()
		env.UID = account.UID()
		env.Email = account.Email()
		env.Role = string(account.Role())
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	metrics.EventsPublishedTotal.WithLabelValues(event.EventName()).Inc()
	return nil
}
