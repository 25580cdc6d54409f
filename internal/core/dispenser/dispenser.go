// Package dispenser owns the cash inventory of a single dispenser and applies
// withdrawals and deposits to it and to account balances atomically.
package dispenser

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/SscSPs/atm_backend/internal/core/withdrawal"
	"github.com/shopspring/decimal"
)

// Dispenser holds exactly one cash section per catalog denomination.
//
// A single mutex covers the whole section map: the inventory a withdrawal is planned
// against is the inventory it is applied to. Operations that also touch an account
// take the dispenser lock first and the account lock second.
type Dispenser struct {
	catalog  *domain.Catalog
	strategy withdrawal.Strategy

	mu       sync.Mutex
	sections map[domain.Denomination]domain.CashSection
}

// New creates a dispenser. It fails with apperrors.ErrConfiguration unless sections
// cover the catalog exactly once.
func New(catalog *domain.Catalog, strategy withdrawal.Strategy, sections ...domain.CashSection) (*Dispenser, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: denomination catalog is required", apperrors.ErrConfiguration)
	}
	if strategy == nil {
		return nil, fmt.Errorf("%w: withdrawal strategy is required", apperrors.ErrConfiguration)
	}

	byDenomination := make(map[domain.Denomination]domain.CashSection, len(sections))
	for _, s := range sections {
		d := s.Denomination()
		if !catalog.Contains(d) {
			return nil, fmt.Errorf("%w: cash section for unsupported denomination %d", apperrors.ErrConfiguration, d)
		}
		if _, dup := byDenomination[d]; dup {
			return nil, fmt.Errorf("%w: more than one cash section for denomination %d", apperrors.ErrConfiguration, d)
		}
		byDenomination[d] = s
	}
	if len(byDenomination) != catalog.Len() {
		return nil, fmt.Errorf("%w: cash sections are incorrectly loaded, expected %d denominations but got %d",
			apperrors.ErrConfiguration, catalog.Len(), len(byDenomination))
	}

	return &Dispenser{
		catalog:  catalog,
		strategy: strategy,
		sections: byDenomination,
	}, nil
}

// Catalog returns the denominations this dispenser supports.
func (d *Dispenser) Catalog() *domain.Catalog { return d.catalog }

// InsertSections replaces the sections for the given denominations, e.g. for a top-up.
// Sections need not cover the whole catalog. Nothing is applied if any section is
// for a denomination outside the catalog.
func (d *Dispenser) InsertSections(sections ...domain.CashSection) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, s := range sections {
		if !d.catalog.Contains(s.Denomination()) {
			return fmt.Errorf("%w: denomination %d is not supported by this dispenser",
				apperrors.ErrValidation, s.Denomination())
		}
	}
	for _, s := range sections {
		d.sections[s.Denomination()] = s
	}
	return nil
}

// TotalBalance returns Σ count × face value over all sections.
func (d *Dispenser) TotalBalance() decimal.Decimal {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.totalLocked()
}

// Sections returns a snapshot of every section, largest face value first.
func (d *Dispenser) Sections() []domain.CashSection {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]domain.CashSection, 0, len(d.sections))
	for _, s := range d.sections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Denomination() > out[j].Denomination() })
	return out
}

// Withdraw plans amount with the strategy and, on an exact breakdown, issues the
// banknotes and debits the account as one unit. NoExactBreakdown and errors leave
// every section and the balance unchanged.
func (d *Dispenser) Withdraw(account *domain.Account, amount decimal.Decimal) (domain.WithdrawalResult, error) {
	if account == nil {
		return domain.WithdrawalResult{}, fmt.Errorf("%w: account is required", apperrors.ErrValidation)
	}
	if err := domain.ValidateWithdrawalAmount(amount); err != nil {
		return domain.WithdrawalResult{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	snapshot := d.snapshotLocked()
	result, err := d.strategy.Plan(snapshot, d.totalLocked(), account, amount)
	if err != nil {
		return domain.WithdrawalResult{}, err
	}
	if !result.IsDispensed() {
		return domain.NoExactBreakdown(), nil
	}

	if !result.Breakdown.Total().Equal(amount) {
		return domain.WithdrawalResult{}, fmt.Errorf("%w: breakdown %s does not sum to %s",
			apperrors.ErrInvariantViolation, result.Breakdown, amount)
	}

	staged := make(map[domain.Denomination]domain.CashSection, len(result.Breakdown))
	for denomination, n := range result.Breakdown {
		section, ok := snapshot[denomination]
		if !ok {
			return domain.WithdrawalResult{}, fmt.Errorf("%w: breakdown names unknown denomination %d",
				apperrors.ErrInvariantViolation, denomination)
		}
		next, err := section.Issue(n)
		if err != nil {
			return domain.WithdrawalResult{}, err
		}
		staged[denomination] = next
	}

	if err := account.Debit(amount); err != nil {
		return domain.WithdrawalResult{}, err
	}
	for denomination, s := range staged {
		d.sections[denomination] = s
	}
	return result, nil
}

// Deposit loads banknotes into the sections and credits their value to the account.
// Every entry is checked against its section first; if any would overflow, nothing is
// applied and apperrors.ErrCashSectionOverflow is returned. Zero counts are ignored.
func (d *Dispenser) Deposit(account *domain.Account, cash map[domain.Denomination]int64) (decimal.Decimal, error) {
	if account == nil {
		return decimal.Zero, fmt.Errorf("%w: account is required", apperrors.ErrValidation)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	staged := make(map[domain.Denomination]domain.CashSection, len(cash))
	deposited := decimal.Zero
	for denomination, n := range cash {
		if n < 0 {
			return decimal.Zero, fmt.Errorf("%w: negative banknote count %d for denomination %d",
				apperrors.ErrValidation, n, denomination)
		}
		section, ok := d.sections[denomination]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: denomination %d is not supported by this dispenser",
				apperrors.ErrValidation, denomination)
		}
		if n == 0 {
			continue
		}
		if !section.CanAdd(n) {
			return decimal.Zero, fmt.Errorf("%w: deposit by account %s would overflow the cash section for denomination %d",
				apperrors.ErrCashSectionOverflow, account.ID(), denomination)
		}
		next, err := section.Add(n)
		if err != nil {
			return decimal.Zero, err
		}
		staged[denomination] = next
		deposited = deposited.Add(denomination.Value().Mul(decimal.NewFromInt(n)))
	}

	if err := account.Credit(deposited); err != nil {
		return decimal.Zero, err
	}
	for denomination, s := range staged {
		d.sections[denomination] = s
	}
	return deposited, nil
}

// AccountBalance reads the account's balance.
func (d *Dispenser) AccountBalance(account *domain.Account) decimal.Decimal {
	return account.Balance()
}

// IsFatal reports errors that mean the dispenser itself is broken rather than the request.
func IsFatal(err error) bool {
	return errors.Is(err, apperrors.ErrInvariantViolation) || errors.Is(err, apperrors.ErrConfiguration)
}

func (d *Dispenser) snapshotLocked() map[domain.Denomination]domain.CashSection {
	out := make(map[domain.Denomination]domain.CashSection, len(d.sections))
	for k, v := range d.sections {
		out[k] = v
	}
	return out
}

func (d *Dispenser) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, s := range d.sections {
		total = total.Add(s.Value())
	}
	return total
}
