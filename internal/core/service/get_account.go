package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
	"github.com/identora/account-system/internal/core/repository"
	"github.com/identora/account-system/internal/metrics"
)

// GetAccountHandler looks an account up by uid. Absence is always an
// explicit failure, never a silent empty result.
type GetAccountHandler struct {
	accounts *repository.Accounts
	log      zerolog.Logger
}

func NewGetAccountHandler(accounts *repository.Accounts, log zerolog.Logger) *GetAccountHandler {
	return &GetAccountHandler{accounts: accounts, log: log}
}

func (h *GetAccountHandler) Handle(ctx context.Context, query ports.GetAccountQuery) (*domain.Account, error) {
	account, found, err := h.accounts.FindByID(ctx, query.UID)
	if err != nil {
		return nil, err
	}
	if !found {
		metrics.LookupsTotal.WithLabelValues("miss").Inc()
		return nil, domain.NewMissingAccount(query.UID)
	}

	metrics.LookupsTotal.WithLabelValues("hit").Inc()
	return account, nil
}
