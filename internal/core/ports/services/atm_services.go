package services

import (
	"context"

	"github.com/SscSPs/atm_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// AtmReaderSvc defines read operations a card holder can perform
type AtmReaderSvc interface {
	// GetBalance returns the current balance of the account.
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// ListJournal returns a page of the account's dispenser operations.
	ListJournal(ctx context.Context, accountID string, params dto.ListJournalParams) (*dto.ListJournalResponse, error)
}

// AtmCashSvc defines the cash operations a card holder can perform
type AtmCashSvc interface {
	// Deposit loads banknotes into the dispenser and credits their value. All-or-nothing.
	Deposit(ctx context.Context, accountID string, req dto.DepositRequest) (*dto.DepositResponse, error)

	// Withdraw dispenses the requested amount if it can be paid exactly.
	// A response with Status false and outcome NO_EXACT_BREAKDOWN is not an error.
	Withdraw(ctx context.Context, accountID string, req dto.WithdrawRequest) (*dto.WithdrawResponse, error)
}

// AtmSvcFacade combines all card holder service interfaces
type AtmSvcFacade interface {
	AtmReaderSvc
	AtmCashSvc
}
