package handlers_test

import (
	"context"

	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/SscSPs/atm_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AtmService ---
type MockAtmService struct {
	mock.Mock
}

func (m *MockAtmService) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAtmService) ListJournal(ctx context.Context, accountID string, params dto.ListJournalParams) (*dto.ListJournalResponse, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalResponse), args.Error(1)
}

func (m *MockAtmService) Deposit(ctx context.Context, accountID string, req dto.DepositRequest) (*dto.DepositResponse, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DepositResponse), args.Error(1)
}

func (m *MockAtmService) Withdraw(ctx context.Context, accountID string, req dto.WithdrawRequest) (*dto.WithdrawResponse, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WithdrawResponse), args.Error(1)
}

var _ portssvc.AtmSvcFacade = (*MockAtmService)(nil)

// --- Mock CashService ---
type MockCashService struct {
	mock.Mock
}

func (m *MockCashService) ListSections(ctx context.Context) (*dto.CashSectionsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CashSectionsResponse), args.Error(1)
}

func (m *MockCashService) InsertSections(ctx context.Context, req dto.InsertSectionsRequest, operator string) (*dto.CashSectionsResponse, error) {
	args := m.Called(ctx, req, operator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CashSectionsResponse), args.Error(1)
}

func (m *MockCashService) GetTotalBalance(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.CashSvcFacade = (*MockCashService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Authenticate(ctx context.Context, cardNumber string, pinCode string) (string, error) {
	args := m.Called(ctx, cardNumber, pinCode)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)
