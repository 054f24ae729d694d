package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
	"github.com/identora/account-system/internal/core/repository"
	"github.com/identora/account-system/internal/metrics"
)

// DeleteAccountHandler removes an account and publishes an AccountDeleted
// event. The event is built ad hoc rather than staged: the aggregate is
// gone by the time it is published.
type DeleteAccountHandler struct {
	accounts *repository.Accounts
	bus      ports.EventBus
	log      zerolog.Logger
}

func NewDeleteAccountHandler(accounts *repository.Accounts, bus ports.EventBus, log zerolog.Logger) *DeleteAccountHandler {
	return &DeleteAccountHandler{accounts: accounts, bus: bus, log: log}
}

func (h *DeleteAccountHandler) Handle(ctx context.Context, cmd ports.DeleteAccountCommand) (*domain.Account, error) {
	account, err := h.accounts.Delete(ctx, cmd.UID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewMissingAccount(cmd.UID)
		}
		return nil, err
	}

	event := domain.AccountDeletedEvent{Account: account, At: time.Now().UTC()}
	if err := h.bus.Publish(ctx, event); err != nil {
		return nil, err
	}

	metrics.AccountsDeletedTotal.Inc()
	h.log.Info().Str("uid", account.UID()).Msg("account deleted")

	return account, nil
}
