package repositories

import (
	"context"

	"github.com/SscSPs/atm_backend/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves the live account ledger by its identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindCredentialByCardNumber retrieves the card credential used to authenticate a card holder.
	FindCredentialByCardNumber(ctx context.Context, cardNumber string) (*domain.Credential, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount registers an account and its card credential. Accounts are created once at startup.
	SaveAccount(ctx context.Context, account *domain.Account, credential domain.Credential) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
