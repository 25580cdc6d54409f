// Package seed loads the accounts and the initial dispenser inventory from a YAML file.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	"github.com/SscSPs/atm_backend/internal/utils"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type file struct {
	Denominations []int64       `yaml:"denominations"`
	Accounts      []accountSeed `yaml:"accounts"`
	Atm           struct {
		CashSections []sectionSeed `yaml:"cash-sections"`
	} `yaml:"atm"`
}

type accountSeed struct {
	ID         string `yaml:"id"`
	Balance    string `yaml:"balance"`
	CardNumber string `yaml:"cardNumber"`
	PinCode    string `yaml:"pinCode"`
}

type sectionSeed struct {
	Value    int64  `yaml:"value"`
	Amount   int64  `yaml:"amount"`
	Capacity *int64 `yaml:"capacity"`
}

// AccountEntry is a seeded account with its card credential.
type AccountEntry struct {
	Account    *domain.Account
	Credential domain.Credential
}

// Seed is the validated content of a seed file. PINs are already hashed.
type Seed struct {
	Catalog  *domain.Catalog
	Sections []domain.CashSection
	Accounts []AccountEntry
}

// LoadFile reads and parses the seed file at path.
func LoadFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading seed file %s: %v", apperrors.ErrConfiguration, path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return s, nil
}

// Parse validates a seed document. Every failure wraps apperrors.ErrConfiguration.
func Parse(data []byte) (*Seed, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrConfiguration, err)
	}

	faceValues := f.Denominations
	if len(faceValues) == 0 {
		faceValues = domain.DefaultFaceValues
	}
	catalog, err := domain.NewCatalog(faceValues...)
	if err != nil {
		return nil, err
	}

	sections, err := parseSections(catalog, f.Atm.CashSections)
	if err != nil {
		return nil, err
	}
	accounts, err := parseAccounts(f.Accounts)
	if err != nil {
		return nil, err
	}

	return &Seed{Catalog: catalog, Sections: sections, Accounts: accounts}, nil
}

func parseSections(catalog *domain.Catalog, in []sectionSeed) ([]domain.CashSection, error) {
	seen := make(map[int64]struct{}, len(in))
	sections := make([]domain.CashSection, 0, len(in))
	for _, s := range in {
		d, ok := catalog.Lookup(s.Value)
		if !ok {
			return nil, fmt.Errorf("%w: cash section for unsupported denomination %d", apperrors.ErrConfiguration, s.Value)
		}
		if _, dup := seen[s.Value]; dup {
			return nil, fmt.Errorf("%w: cash section for %d listed twice", apperrors.ErrConfiguration, s.Value)
		}
		seen[s.Value] = struct{}{}

		capacity := domain.MaxSectionCapacity
		if s.Capacity != nil {
			capacity = *s.Capacity
		}
		section, err := domain.NewCashSectionWithCapacity(d, s.Amount, capacity)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConfiguration, err)
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func parseAccounts(in []accountSeed) ([]AccountEntry, error) {
	ids := make(map[string]struct{}, len(in))
	cards := make(map[string]struct{}, len(in))
	accounts := make([]AccountEntry, 0, len(in))
	for i, a := range in {
		if a.ID == "" || a.CardNumber == "" || a.PinCode == "" {
			return nil, fmt.Errorf("%w: account #%d needs id, cardNumber and pinCode", apperrors.ErrConfiguration, i+1)
		}
		if _, dup := ids[a.ID]; dup {
			return nil, fmt.Errorf("%w: account %s listed twice", apperrors.ErrConfiguration, a.ID)
		}
		if _, dup := cards[a.CardNumber]; dup {
			return nil, fmt.Errorf("%w: card number of account %s already used", apperrors.ErrConfiguration, a.ID)
		}
		ids[a.ID] = struct{}{}
		cards[a.CardNumber] = struct{}{}

		balance := decimal.Zero
		if a.Balance != "" {
			var err error
			balance, err = decimal.NewFromString(a.Balance)
			if err != nil {
				return nil, fmt.Errorf("%w: balance of account %s: %v", apperrors.ErrConfiguration, a.ID, err)
			}
		}
		account, err := domain.NewAccount(a.ID, balance)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConfiguration, err)
		}

		pinHash, err := utils.HashPassword(a.PinCode)
		if err != nil {
			return nil, fmt.Errorf("%w: hashing PIN of account %s: %v", apperrors.ErrConfiguration, a.ID, err)
		}
		accounts = append(accounts, AccountEntry{
			Account:    account,
			Credential: domain.Credential{CardNumber: a.CardNumber, AccountID: a.ID, PinHash: pinHash},
		})
	}
	return accounts, nil
}

// Apply registers every seeded account in repo.
func (s *Seed) Apply(ctx context.Context, repo portsrepo.AccountWriter) error {
	for _, a := range s.Accounts {
		if err := repo.SaveAccount(ctx, a.Account, a.Credential); err != nil {
			return fmt.Errorf("seeding account %s: %w", a.Account.ID(), err)
		}
	}
	return nil
}
