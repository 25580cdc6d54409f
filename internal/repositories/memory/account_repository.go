// Package memory holds process-lifetime repositories. State is never persisted.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
)

// AccountRepository keeps accounts and card credentials in maps.
// The *domain.Account values it hands out are the live ledgers, not copies.
type AccountRepository struct {
	mu          sync.RWMutex
	accounts    map[string]*domain.Account
	credentials map[string]domain.Credential // by card number
}

// NewAccountRepository creates an empty repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts:    make(map[string]*domain.Account),
		credentials: make(map[string]domain.Credential),
	}
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func (r *AccountRepository) SaveAccount(ctx context.Context, account *domain.Account, credential domain.Credential) error {
	if account == nil {
		return fmt.Errorf("%w: account is required", apperrors.ErrValidation)
	}
	if credential.CardNumber == "" || credential.PinHash == "" {
		return fmt.Errorf("%w: card number and PIN hash are required for account %s", apperrors.ErrValidation, account.ID())
	}
	if credential.AccountID != account.ID() {
		return fmt.Errorf("%w: credential for card %s belongs to account %s, not %s",
			apperrors.ErrValidation, credential.CardNumber, credential.AccountID, account.ID())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID()]; exists {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, account.ID())
	}
	if _, exists := r.credentials[credential.CardNumber]; exists {
		return fmt.Errorf("%w: card number already registered", apperrors.ErrDuplicate)
	}
	r.accounts[account.ID()] = account
	r.credentials[credential.CardNumber] = credential
	return nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return account, nil
}

func (r *AccountRepository) FindCredentialByCardNumber(ctx context.Context, cardNumber string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	credential, ok := r.credentials[cardNumber]
	if !ok {
		return nil, fmt.Errorf("%w: card", apperrors.ErrNotFound)
	}
	return &credential, nil
}
