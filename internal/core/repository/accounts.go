package repository

import (
	"context"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
)

// AccountMapper materializes accounts from their persisted documents.
type AccountMapper struct{}

func (AccountMapper) ToDomain(doc domain.AccountDocument) (*domain.Account, error) {
	return domain.NewAccount(doc), nil
}

func (AccountMapper) ToPersistence(account *domain.Account) domain.AccountDocument {
	return account.Serialize()
}

// Accounts is the account collection, extending the generic repository with
// lookup by normalized email.
type Accounts struct {
	*Repository[*domain.Account, domain.AccountDocument]
}

func NewAccounts(store ports.DocumentStore[domain.AccountDocument]) *Accounts {
	return &Accounts{
		Repository: New[*domain.Account, domain.AccountDocument](store, AccountMapper{}),
	}
}

// FindByEmail scans for the first exact match on the normalized address.
// Absence is reported through the bool.
func (r *Accounts) FindByEmail(ctx context.Context, email string) (*domain.Account, bool, error) {
	email = domain.NormalizeEmail(email)
	accounts, err := r.Entities(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, account := range accounts {
		if account.Email() == email {
			return account, true, nil
		}
	}
	return nil, false, nil
}
