package domain

import (
	"context"
	"time"
)

// Event is a domain event produced by an aggregate.
type Event interface {
	EventName() string
	OccurredAt() time.Time
}

// AccountEvent is an Event triggered by a specific account.
type AccountEvent interface {
	Event
	TriggeredBy() *Account
}

// EventPublisher delivers a single event to the event bus. Aggregates drain
// staged events through one of these on Commit.
type EventPublisher func(ctx context.Context, event Event) error

// AccountCreatedEvent is staged when an account is constructed from a
// creation payload and published once the account is durably stored.
type AccountCreatedEvent struct {
	Account *Account
	At      time.Time
}

func (e AccountCreatedEvent) EventName() string     { return "account.created" }
func (e AccountCreatedEvent) OccurredAt() time.Time { return e.At }
func (e AccountCreatedEvent) TriggeredBy() *Account { return e.Account }

// AccountDeletedEvent is published immediately after an account is removed.
type AccountDeletedEvent struct {
	Account *Account
	At      time.Time
}

func (e AccountDeletedEvent) EventName() string     { return "account.deleted" }
func (e AccountDeletedEvent) OccurredAt() time.Time { return e.At }
func (e AccountDeletedEvent) TriggeredBy() *Account { return e.Account }
