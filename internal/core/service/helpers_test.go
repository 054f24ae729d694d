package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
	"github.com/identora/account-system/internal/core/repository"
	"github.com/identora/account-system/internal/infrastructure/store/memory"
)

func newTestAccounts() *repository.Accounts {
	return repository.NewAccounts(memory.New[domain.AccountDocument]())
}

// stubHasher applies a reversible marker so tests can assert the handler
// swapped the plaintext for the "hash".
type stubHasher struct{}

func (stubHasher) Hash(plaintext string) (string, error) { return "hashed$" + plaintext, nil }

func (stubHasher) Verify(hash, plaintext string) bool { return hash == "hashed$"+plaintext }

// stubBus records published events. onPublish, when set, runs before the
// event is recorded.
type stubBus struct {
	mu        sync.Mutex
	events    []domain.Event
	onPublish func(ctx context.Context, event domain.Event) error
}

func (b *stubBus) Publish(ctx context.Context, event domain.Event) error {
	if b.onPublish != nil {
		if err := b.onPublish(ctx, event); err != nil {
			return err
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *stubBus) published() []domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Event, len(b.events))
	copy(out, b.events)
	return out
}

// stubSigner records the last claim set and options it signed.
type stubSigner struct {
	claims map[string]any
	opts   ports.SignOptions
}

func (s *stubSigner) Sign(claims map[string]any, opts ports.SignOptions) (string, error) {
	s.claims = claims
	s.opts = opts
	return "signed-token", nil
}

func testLogger() zerolog.Logger { return zerolog.Nop() }
