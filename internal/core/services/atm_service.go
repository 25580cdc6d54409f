package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/dispenser"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/SscSPs/atm_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultJournalPageSize = 20

// atmService implements the card holder operations on top of a single dispenser.
type atmService struct {
	BaseService
	dispenser   *dispenser.Dispenser
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalRepositoryFacade
	now         func() time.Time
}

// ServiceOption is a functional option for configuring the ATM services
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	journalRepo portsrepo.JournalRepositoryFacade
	now         func() time.Time
}

// WithJournalRepository records every committed operation in repo.
func WithJournalRepository(repo portsrepo.JournalRepositoryFacade) ServiceOption {
	return func(o *serviceOptions) {
		o.journalRepo = repo
	}
}

// WithClock overrides the time source used for journal entries.
func WithClock(now func() time.Time) ServiceOption {
	return func(o *serviceOptions) {
		o.now = now
	}
}

func applyOptions(options []ServiceOption) serviceOptions {
	o := serviceOptions{now: time.Now}
	for _, option := range options {
		option(&o)
	}
	return o
}

// NewAtmService creates the card holder service.
func NewAtmService(d *dispenser.Dispenser, accountRepo portsrepo.AccountReader, options ...ServiceOption) portssvc.AtmSvcFacade {
	o := applyOptions(options)
	return &atmService{
		dispenser:   d,
		accountRepo: accountRepo,
		journalRepo: o.journalRepo,
		now:         o.now,
	}
}

// Ensure atmService implements the AtmSvcFacade interface
var _ portssvc.AtmSvcFacade = (*atmService)(nil)

func (s *atmService) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.dispenser.AccountBalance(account), nil
}

func (s *atmService) Withdraw(ctx context.Context, accountID string, req dto.WithdrawRequest) (*dto.WithdrawResponse, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result, err := s.dispenser.Withdraw(account, req.Amount)
	if err != nil {
		s.logOperationError(ctx, err, "Withdrawal rejected",
			slog.String("account_id", accountID),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}

	if result.IsDispensed() {
		s.LogInfo(ctx, "Withdrawal dispensed",
			slog.String("account_id", accountID),
			slog.String("breakdown", result.Breakdown.String()))
	} else {
		s.LogInfo(ctx, "No exact breakdown for withdrawal",
			slog.String("account_id", accountID),
			slog.String("amount", req.Amount.String()))
	}

	s.record(ctx, domain.JournalEntry{
		AccountID: accountID,
		Operation: domain.OperationWithdraw,
		Amount:    req.Amount,
		Outcome:   result.Outcome,
		Banknotes: result.Breakdown.FaceValues(),
		CreatedBy: accountID,
	})

	resp := dto.ToWithdrawResponse(req.Amount, result, s.dispenser.AccountBalance(account))
	return &resp, nil
}

func (s *atmService) Deposit(ctx context.Context, accountID string, req dto.DepositRequest) (*dto.DepositResponse, error) {
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	catalog := s.dispenser.Catalog()
	cash := make(map[domain.Denomination]int64, len(req.Cash))
	hasBanknotes := false
	for faceValue, n := range req.Cash {
		d, ok := catalog.Lookup(faceValue)
		if !ok {
			err := fmt.Errorf("%w: banknote %d is not accepted by this dispenser", apperrors.ErrValidation, faceValue)
			s.LogWarn(ctx, err, "Deposit rejected", slog.String("account_id", accountID))
			return nil, err
		}
		cash[d] = n
		hasBanknotes = hasBanknotes || n > 0
	}
	if !hasBanknotes {
		err := fmt.Errorf("%w: deposit contains no banknotes", apperrors.ErrValidation)
		s.LogWarn(ctx, err, "Deposit rejected", slog.String("account_id", accountID))
		return nil, err
	}

	deposited, err := s.dispenser.Deposit(account, cash)
	if err != nil {
		s.logOperationError(ctx, err, "Deposit rejected", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Deposit accepted",
		slog.String("account_id", accountID),
		slog.String("deposited", deposited.String()))

	banknotes := make(map[int64]int64, len(req.Cash))
	for faceValue, n := range req.Cash {
		if n > 0 {
			banknotes[faceValue] = n
		}
	}
	s.record(ctx, domain.JournalEntry{
		AccountID: accountID,
		Operation: domain.OperationDeposit,
		Amount:    deposited,
		Banknotes: banknotes,
		CreatedBy: accountID,
	})

	return &dto.DepositResponse{
		Status:    true,
		Deposited: deposited,
		Balance:   s.dispenser.AccountBalance(account),
	}, nil
}

func (s *atmService) ListJournal(ctx context.Context, accountID string, params dto.ListJournalParams) (*dto.ListJournalResponse, error) {
	if _, err := s.findAccount(ctx, accountID); err != nil {
		return nil, err
	}
	if s.journalRepo == nil {
		return &dto.ListJournalResponse{Entries: []dto.JournalEntryResponse{}}, nil
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalPageSize
	}

	entries, nextToken, err := s.journalRepo.ListEntriesByAccount(ctx, accountID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	return &dto.ListJournalResponse{
		Entries:   dto.ToJournalEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

func (s *atmService) findAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogWarn(ctx, err, "Account lookup failed", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// logOperationError logs client-caused rejections as warnings and dispenser faults as errors.
func (s *atmService) logOperationError(ctx context.Context, err error, msg string, keyvals ...any) {
	if dispenser.IsFatal(err) {
		s.LogError(ctx, err, msg, keyvals...)
		return
	}
	s.LogWarn(ctx, err, msg, keyvals...)
}

// record appends entry to the journal. The operation is already committed, so a
// failed write is only logged.
func (s *atmService) record(ctx context.Context, entry domain.JournalEntry) {
	recordEntry(ctx, &s.BaseService, s.journalRepo, s.now, entry)
}

func recordEntry(ctx context.Context, base *BaseService, repo portsrepo.JournalWriter, now func() time.Time, entry domain.JournalEntry) {
	if repo == nil {
		return
	}
	entry.EntryID = uuid.NewString()
	entry.CreatedAt = now().UTC()
	if entry.Banknotes == nil {
		entry.Banknotes = map[int64]int64{}
	}
	if err := repo.SaveEntry(ctx, entry); err != nil {
		base.LogError(ctx, err, "Failed to record journal entry",
			slog.String("entry_id", entry.EntryID),
			slog.String("operation", string(entry.Operation)))
	}
}
