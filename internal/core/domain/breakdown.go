package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Breakdown maps each denomination to the number of banknotes picked for a withdrawal.
// Only positive counts are stored.
type Breakdown map[Denomination]int64

// Total returns Σ count × face value.
func (b Breakdown) Total() decimal.Decimal {
	sum := decimal.Zero
	for d, n := range b {
		sum = sum.Add(d.Value().Mul(decimal.NewFromInt(n)))
	}
	return sum
}

// Denominations returns the denominations present, largest first.
func (b Breakdown) Denominations() []Denomination {
	out := make([]Denomination, 0, len(b))
	for d := range b {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// FaceValues converts the breakdown to plain face values, for the wire and the journal.
func (b Breakdown) FaceValues() map[int64]int64 {
	out := make(map[int64]int64, len(b))
	for d, n := range b {
		out[int64(d)] = n
	}
	return out
}

func (b Breakdown) String() string {
	parts := make([]string, 0, len(b)+1)
	for _, d := range b.Denominations() {
		parts = append(parts, fmt.Sprintf("%d:%d", d, b[d]))
	}
	parts = append(parts, "total:"+b.Total().String())
	return strings.Join(parts, ",")
}

// Outcome tags the result of a withdrawal that did not fail.
type Outcome string

const (
	// OutcomeDispensed means an exact breakdown was found and committed.
	OutcomeDispensed Outcome = "DISPENSED"
	// OutcomeNoExactBreakdown means the amount cannot be paid exactly from the current
	// inventory. It is an expected outcome, not an error; nothing changed.
	OutcomeNoExactBreakdown Outcome = "NO_EXACT_BREAKDOWN"
)

// WithdrawalResult is the tagged result of planning or performing a withdrawal.
// Breakdown is set only when Outcome is OutcomeDispensed.
type WithdrawalResult struct {
	Outcome   Outcome
	Breakdown Breakdown
}

// Dispensed builds a successful result.
func Dispensed(b Breakdown) WithdrawalResult {
	return WithdrawalResult{Outcome: OutcomeDispensed, Breakdown: b}
}

// NoExactBreakdown builds the "cannot pay exactly" result.
func NoExactBreakdown() WithdrawalResult {
	return WithdrawalResult{Outcome: OutcomeNoExactBreakdown}
}

// IsDispensed reports whether banknotes were (or are to be) handed out.
func (r WithdrawalResult) IsDispensed() bool { return r.Outcome == OutcomeDispensed }
