package domain_test

import (
	"math"
	"testing"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSection(t *testing.T, d domain.Denomination, count, capacity int64) domain.CashSection {
	t.Helper()
	s, err := domain.NewCashSectionWithCapacity(d, count, capacity)
	require.NoError(t, err)
	return s
}

func TestNewCashSection(t *testing.T) {
	s, err := domain.NewCashSection(100, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.Denomination(100), s.Denomination())
	assert.Equal(t, int64(5), s.Count())
	assert.Equal(t, domain.MaxSectionCapacity, s.Capacity())
	assert.True(t, decimal.NewFromInt(500).Equal(s.Value()))

	_, err = domain.NewCashSectionWithCapacity(100, 11, 10)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewCashSection(100, -1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewCashSection(0, 1)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCashSection_CanAdd(t *testing.T) {
	tests := []struct {
		name    string
		section domain.CashSection
		add     int64
		want    bool
	}{
		{name: "fits", section: mustSection(t, 10, 5, 10), add: 5, want: true},
		{name: "zero", section: mustSection(t, 10, 5, 10), add: 0, want: true},
		{name: "exceeds capacity", section: mustSection(t, 10, 5, 10), add: 6, want: false},
		{name: "negative", section: mustSection(t, 10, 5, 10), add: -1, want: false},
		{name: "counter overflow", section: mustSection(t, 10, 1, math.MaxInt64), add: math.MaxInt64, want: false},
		{name: "exactly max", section: mustSection(t, 10, 1, math.MaxInt64), add: math.MaxInt64 - 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.section.CanAdd(tt.add))
		})
	}
}

func TestCashSection_AddReturnsNewValue(t *testing.T) {
	before := mustSection(t, 1000, 5, 10)

	after, err := before.Add(3)
	require.NoError(t, err)
	assert.Equal(t, int64(8), after.Count())
	assert.Equal(t, int64(5), before.Count(), "original section must be left untouched")

	_, err = after.Add(3)
	assert.ErrorIs(t, err, apperrors.ErrCashSectionOverflow)
}

func TestCashSection_Issue(t *testing.T) {
	before := mustSection(t, 500, 5, 10)

	after, err := before.Issue(5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), after.Count())
	assert.Equal(t, int64(5), before.Count())

	_, err = before.Issue(6)
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)

	_, err = before.Issue(-1)
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)
}
