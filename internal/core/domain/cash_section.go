package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxSectionCapacity is the capacity of a section loaded without an explicit limit.
const MaxSectionCapacity int64 = math.MaxInt64

// CashSection is one banknote compartment of the dispenser.
// It is a value: Add and Issue return a new section and leave the receiver untouched,
// so every state transition of the inventory is an explicit replacement.
type CashSection struct {
	denomination Denomination
	count        int64
	capacity     int64
}

// NewCashSection creates a section holding count banknotes with MaxSectionCapacity.
func NewCashSection(d Denomination, count int64) (CashSection, error) {
	return NewCashSectionWithCapacity(d, count, MaxSectionCapacity)
}

// NewCashSectionWithCapacity creates a section with an explicit capacity.
func NewCashSectionWithCapacity(d Denomination, count, capacity int64) (CashSection, error) {
	if d <= 0 {
		return CashSection{}, fmt.Errorf("%w: denomination %d must be positive", apperrors.ErrValidation, d)
	}
	if capacity < 0 {
		return CashSection{}, fmt.Errorf("%w: capacity %d is negative", apperrors.ErrValidation, capacity)
	}
	if count < 0 || count > capacity {
		return CashSection{}, fmt.Errorf("%w: count %d outside [0, %d] for denomination %d",
			apperrors.ErrValidation, count, capacity, d)
	}
	return CashSection{denomination: d, count: count, capacity: capacity}, nil
}

// Denomination returns the face value this section stores.
func (s CashSection) Denomination() Denomination { return s.denomination }

// Count returns the number of banknotes currently in the section.
func (s CashSection) Count() int64 { return s.count }

// Capacity returns the maximum number of banknotes the section can hold.
func (s CashSection) Capacity() int64 { return s.capacity }

// Value returns count × face value.
func (s CashSection) Value() decimal.Decimal {
	return s.denomination.Value().Mul(decimal.NewFromInt(s.count))
}

// CanAdd reports whether n banknotes fit without overflowing the counter or the capacity.
func (s CashSection) CanAdd(n int64) bool {
	if n < 0 {
		return false
	}
	if n > math.MaxInt64-s.count {
		return false
	}
	return s.count+n <= s.capacity
}

// Add returns a section with n more banknotes.
func (s CashSection) Add(n int64) (CashSection, error) {
	if !s.CanAdd(n) {
		return s, fmt.Errorf("%w: cannot add %d banknotes of %d (count %d, capacity %d)",
			apperrors.ErrCashSectionOverflow, n, s.denomination, s.count, s.capacity)
	}
	s.count += n
	return s, nil
}

// Issue returns a section with n fewer banknotes. Asking for more than the section
// holds is a bug in the caller, reported as ErrInvariantViolation.
func (s CashSection) Issue(n int64) (CashSection, error) {
	if n < 0 || n > s.count {
		return s, fmt.Errorf("%w: cannot issue %d banknotes of %d, section holds %d",
			apperrors.ErrInvariantViolation, n, s.denomination, s.count)
	}
	s.count -= n
	return s, nil
}

func (s CashSection) String() string {
	return fmt.Sprintf("%d:%d/%d", s.denomination, s.count, s.capacity)
}
