// Package cqrs routes command and query values to their handlers.
package cqrs

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/rs/zerolog"

	"github.com/identora/account-system/internal/metrics"
)

// Bus dispatches each message to exactly one handler, keyed by the
// message's concrete type. Registration happens once at wiring time; the
// bus is read-only afterwards and safe for concurrent dispatch.
type Bus struct {
	handlers map[reflect.Type]func(ctx context.Context, msg any) (any, error)
	log      zerolog.Logger
}

func NewBus(log zerolog.Logger) *Bus {
	return &Bus{
		handlers: make(map[reflect.Type]func(ctx context.Context, msg any) (any, error)),
		log:      log,
	}
}

// Register binds handle to messages of type M. A second registration for
// the same type is an error.
func Register[M any](b *Bus, handle func(ctx context.Context, msg M) (any, error)) error {
	t := reflect.TypeOf(*new(M))
	if _, exists := b.handlers[t]; exists {
		return fmt.Errorf("cqrs: handler already registered for %s", t)
	}
	b.handlers[t] = func(ctx context.Context, msg any) (any, error) {
		return handle(ctx, msg.(M))
	}
	return nil
}

// Dispatch routes msg to its registered handler and returns the handler's
// result. Dispatching an unregistered message type is an error.
func (b *Bus) Dispatch(ctx context.Context, msg any) (any, error) {
	t := reflect.TypeOf(msg)
	handle, ok := b.handlers[t]
	if !ok {
		return nil, fmt.Errorf("cqrs: no handler registered for %T", msg)
	}

	start := time.Now()
	result, err := handle(ctx, msg)
	metrics.DispatchDuration.WithLabelValues(t.Name()).Observe(time.Since(start).Seconds())

	if err != nil {
		b.log.Debug().Err(err).Str("message", t.Name()).Msg("dispatch failed")
	}
	return result, err
}
