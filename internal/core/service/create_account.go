package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
	"github.com/identora/account-system/internal/core/repository"
	"github.com/identora/account-system/internal/metrics"
)

// CreateAccountHandler registers new accounts: uniqueness check, entity
// validation against the plaintext password, hashing, insert, and finally
// the commit of the staged creation event.
type CreateAccountHandler struct {
	accounts *repository.Accounts
	hasher   ports.PasswordHasher
	bus      ports.EventBus
	validate *validator.Validate
	log      zerolog.Logger
}

func NewCreateAccountHandler(
	accounts *repository.Accounts,
	hasher ports.PasswordHasher,
	bus ports.EventBus,
	log zerolog.Logger,
) *CreateAccountHandler {
	return &CreateAccountHandler{
		accounts: accounts,
		hasher:   hasher,
		bus:      bus,
		validate: validator.New(),
		log:      log,
	}
}

// Handle executes the command. The uniqueness check and the insert are not
// transactional; see the concurrency note on the repository.
func (h *CreateAccountHandler) Handle(ctx context.Context, cmd ports.CreateAccountCommand) (*domain.Account, error) {
	if err := h.validate.Struct(cmd); err != nil {
		return nil, commandValidation(err)
	}

	if _, found, err := h.accounts.FindByEmail(ctx, cmd.Email); err != nil {
		return nil, err
	} else if found {
		return nil, domain.NewEmailConflict(domain.NormalizeEmail(cmd.Email))
	}

	now := time.Now().Unix()
	account := domain.NewAccount(domain.AccountDocument{
		Document: domain.Document{CreatedAt: &now},
		Email:    cmd.Email,
		Password: cmd.Password,
		Role:     domain.Role(cmd.Role),
	})

	// Validation runs against the plaintext, never the hash.
	if err := account.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, err
	}
	account.SetPassword(hash)

	if _, err := h.accounts.Insert(ctx, account); err != nil {
		return nil, err
	}

	// Publish only after the account is durably stored.
	if err := account.Commit(ctx, h.bus.Publish); err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(account.Role())).Inc()
	h.log.Info().
		Str("uid", account.UID()).
		Str("role", string(account.Role())).
		Msg("account created")

	return account, nil
}
