package domain

import (
	"fmt"
	"sync"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Account is a balance holder for one card holder. Balances are whole amounts in
// the lowest currency unit, held as arbitrary-precision decimals.
//
// Every Account carries its own lock. Callers that also hold the dispenser lock must
// take the dispenser lock first.
type Account struct {
	accountID string

	mu      sync.Mutex
	balance decimal.Decimal
}

// NewAccount creates an account with an opening balance.
func NewAccount(accountID string, balance decimal.Decimal) (*Account, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account id is required", apperrors.ErrValidation)
	}
	if err := validateAmount(balance, true); err != nil {
		return nil, fmt.Errorf("opening balance of account %s: %w", accountID, err)
	}
	return &Account{accountID: accountID, balance: balance}, nil
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.accountID }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) error {
	if err := validateAmount(amount, true); err != nil {
		return fmt.Errorf("credit account %s: %w", a.accountID, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
	return nil
}

// Debit subtracts amount from the balance. It is guarded independently of any
// withdrawal policy: it fails with ErrInsufficientBalance when amount exceeds the
// balance at the moment of the debit.
func (a *Account) Debit(amount decimal.Decimal) error {
	if err := validateAmount(amount, true); err != nil {
		return fmt.Errorf("debit account %s: %w", a.accountID, err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: cannot debit %s from account %s with balance %s",
			apperrors.ErrInsufficientBalance, amount, a.accountID, a.balance)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// validateAmount accepts whole, non-negative amounts (zero only when allowZero).
func validateAmount(amount decimal.Decimal, allowZero bool) error {
	if !amount.IsInteger() {
		return fmt.Errorf("%w: amount %s is not a whole number", apperrors.ErrValidation, amount)
	}
	if amount.IsNegative() || (!allowZero && amount.IsZero()) {
		return fmt.Errorf("%w: amount %s must be positive", apperrors.ErrValidation, amount)
	}
	return nil
}

// ValidateWithdrawalAmount accepts whole amounts strictly greater than zero.
func ValidateWithdrawalAmount(amount decimal.Decimal) error {
	return validateAmount(amount, false)
}
