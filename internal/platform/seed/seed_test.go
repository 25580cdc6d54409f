package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/SscSPs/atm_backend/internal/platform/seed"
	"github.com/SscSPs/atm_backend/internal/repositories/memory"
	"github.com/SscSPs/atm_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSeed = `
accounts:
  - id: 1
    balance: 1600
    cardNumber: "4000000000000001"
    pinCode: "1234"
  - id: 2
    balance: "123456789012345678901234567890"
    cardNumber: "4000000000000002"
    pinCode: "0000"
atm:
  cash-sections:
    - value: 10
      amount: 5
    - value: 100
      amount: 5
      capacity: 100
    - value: 500
      amount: 5
    - value: 1000
      amount: 5
    - value: 5000
      amount: 5
`

func TestParse(t *testing.T) {
	s, err := seed.Parse([]byte(validSeed))
	require.NoError(t, err)

	assert.Equal(t, 5, s.Catalog.Len())
	require.Len(t, s.Sections, 5)
	assert.Equal(t, int64(100), s.Sections[1].Capacity())
	assert.Equal(t, domain.MaxSectionCapacity, s.Sections[0].Capacity())

	require.Len(t, s.Accounts, 2)
	assert.Equal(t, "1", s.Accounts[0].Account.ID())
	assert.True(t, s.Accounts[0].Account.Balance().Equal(decimal.NewFromInt(1600)))
	assert.Equal(t, "123456789012345678901234567890", s.Accounts[1].Account.Balance().String())

	cred := s.Accounts[0].Credential
	assert.NotEqual(t, "1234", cred.PinHash)
	assert.True(t, utils.CheckPasswordHash("1234", cred.PinHash))
}

func TestParse_CustomDenominations(t *testing.T) {
	s, err := seed.Parse([]byte("denominations: [50, 200]\natm:\n  cash-sections:\n    - value: 200\n      amount: 1\n"))
	require.NoError(t, err)
	assert.True(t, s.Catalog.Contains(50))
	assert.False(t, s.Catalog.Contains(100))
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"not yaml":              "accounts: [",
		"unknown denomination":  "atm:\n  cash-sections:\n    - value: 200\n      amount: 1\n",
		"duplicate section":     "atm:\n  cash-sections:\n    - value: 10\n    - value: 10\n",
		"negative amount":       "atm:\n  cash-sections:\n    - value: 10\n      amount: -1\n",
		"over capacity":         "atm:\n  cash-sections:\n    - value: 10\n      amount: 5\n      capacity: 1\n",
		"duplicate card":        "accounts:\n  - {id: 1, cardNumber: '4', pinCode: '1'}\n  - {id: 2, cardNumber: '4', pinCode: '1'}\n",
		"duplicate id":          "accounts:\n  - {id: 1, cardNumber: '4', pinCode: '1'}\n  - {id: 1, cardNumber: '5', pinCode: '1'}\n",
		"missing pin":           "accounts:\n  - {id: 1, cardNumber: '4'}\n",
		"negative balance":      "accounts:\n  - {id: 1, balance: -5, cardNumber: '4', pinCode: '1'}\n",
		"fractional balance":    "accounts:\n  - {id: 1, balance: 1.5, cardNumber: '4', pinCode: '1'}\n",
		"bad denomination list": "denominations: [10, 10]\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := seed.Parse([]byte(doc))
			assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		})
	}
}

func TestLoadFileAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validSeed), 0o600))

	s, err := seed.LoadFile(path)
	require.NoError(t, err)

	repo := memory.NewAccountRepository()
	require.NoError(t, s.Apply(context.Background(), repo))

	cred, err := repo.FindCredentialByCardNumber(context.Background(), "4000000000000002")
	require.NoError(t, err)
	assert.Equal(t, "2", cred.AccountID)

	_, err = seed.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}
