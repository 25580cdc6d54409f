package withdrawal

import (
	"fmt"
	"sort"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Greedy always consumes the largest face value first, bounded by what the section holds.
// It returns NoExactBreakdown rather than an approximate or partial breakdown.
type Greedy struct {
	inclusiveBalance bool
}

// GreedyOption configures a Greedy strategy.
type GreedyOption func(*Greedy)

// WithInclusiveBalanceCheck lets an account withdraw its entire balance.
// By default the requested amount must be strictly less than the balance.
func WithInclusiveBalanceCheck() GreedyOption {
	return func(g *Greedy) {
		g.inclusiveBalance = true
	}
}

// NewGreedy creates the greedy strategy.
func NewGreedy(options ...GreedyOption) *Greedy {
	g := &Greedy{}
	for _, option := range options {
		option(g)
	}
	return g
}

var _ Strategy = (*Greedy)(nil)

// Plan implements Strategy.
func (g *Greedy) Plan(inventory map[domain.Denomination]domain.CashSection, total decimal.Decimal,
	account BalanceReader, amount decimal.Decimal) (domain.WithdrawalResult, error) {
	if err := g.checkBalance(account, amount); err != nil {
		return domain.WithdrawalResult{}, err
	}

	if amount.GreaterThan(total) {
		return domain.NoExactBreakdown(), nil
	}

	remaining := amount
	picks := make(domain.Breakdown)
	for _, d := range descending(inventory) {
		if remaining.IsZero() {
			break
		}
		available := inventory[d].Count()
		if available <= 0 {
			continue
		}
		fit, _ := remaining.QuoRem(d.Value(), 0)
		take := decimal.Min(fit, decimal.NewFromInt(available))
		if !take.IsPositive() {
			continue
		}
		n := take.IntPart()
		picks[d] = n
		remaining = remaining.Sub(d.Value().Mul(take))
	}

	if !remaining.IsZero() {
		return domain.NoExactBreakdown(), nil
	}
	return domain.Dispensed(picks), nil
}

func (g *Greedy) checkBalance(account BalanceReader, amount decimal.Decimal) error {
	balance := account.Balance()
	allowed := amount.LessThan(balance)
	if g.inclusiveBalance {
		allowed = amount.LessThanOrEqual(balance)
	}
	if !allowed {
		return fmt.Errorf("%w: requested %s, balance of account %s is %s",
			apperrors.ErrInsufficientBalance, amount, account.ID(), balance)
	}
	return nil
}

func descending(inventory map[domain.Denomination]domain.CashSection) []domain.Denomination {
	order := make([]domain.Denomination, 0, len(inventory))
	for d := range inventory {
		order = append(order, d)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] > order[j] })
	return order
}
