// Package withdrawal turns an inventory snapshot and a requested amount into a
// banknote breakdown. Strategies are stateless and never mutate what they are given.
package withdrawal

import (
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceReader is the part of an account a strategy may look at.
type BalanceReader interface {
	ID() string
	Balance() decimal.Decimal
}

// Strategy plans a withdrawal. It returns exactly one of:
//   - a Dispensed result whose breakdown sums to amount,
//   - a NoExactBreakdown result,
//   - apperrors.ErrInsufficientBalance.
//
// Planning does not debit the account; the dispenser commits the plan and the debit
// together under its lock.
type Strategy interface {
	Plan(inventory map[domain.Denomination]domain.CashSection, total decimal.Decimal,
		account BalanceReader, amount decimal.Decimal) (domain.WithdrawalResult, error)
}
