package cqrs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type createWidget struct{ Name string }

type deleteWidget struct{ ID string }

func TestBus_DispatchRoutesByConcreteType(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	if err := Register(bus, func(_ context.Context, cmd createWidget) (any, error) {
		return "created:" + cmd.Name, nil
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := Register(bus, func(_ context.Context, cmd deleteWidget) (any, error) {
		return "deleted:" + cmd.ID, nil
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := bus.Dispatch(context.Background(), createWidget{Name: "w1"})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if result != "created:w1" {
		t.Fatalf("wrong handler invoked: %v", result)
	}

	result, err = bus.Dispatch(context.Background(), deleteWidget{ID: "w2"})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if result != "deleted:w2" {
		t.Fatalf("wrong handler invoked: %v", result)
	}
}

func TestBus_DuplicateRegistrationFails(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	handle := func(_ context.Context, cmd createWidget) (any, error) { return nil, nil }
	if err := Register(bus, handle); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	err := Register(bus, handle)
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate registration error, got %v", err)
	}
}

func TestBus_UnknownMessageFails(t *testing.T) {
	bus := NewBus(zerolog.Nop())

	_, err := bus.Dispatch(context.Background(), deleteWidget{ID: "w"})
	if err == nil || !strings.Contains(err.Error(), "no handler registered") {
		t.Fatalf("expected unknown message error, got %v", err)
	}
}

func TestBus_HandlerErrorPropagates(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	boom := errors.New("boom")

	if err := Register(bus, func(_ context.Context, cmd createWidget) (any, error) {
		return nil, boom
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := bus.Dispatch(context.Background(), createWidget{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}
}
