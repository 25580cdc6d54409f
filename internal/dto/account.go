package dto

import (
	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
}

// DepositRequest defines the banknotes a card holder inserts, keyed by face value.
type DepositRequest struct {
	Cash map[int64]int64 `json:"cash" binding:"required,min=1,dive,keys,facevalue,endkeys,gte=0"`
}

// DepositResponse reports the outcome of a deposit.
type DepositResponse struct {
	Status    bool            `json:"status"`
	Deposited decimal.Decimal `json:"deposited"`
	Balance   decimal.Decimal `json:"balance"`
}

// WithdrawRequest defines the amount a card holder asks for.
// The amount may be sent as a JSON number or string.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// BanknoteCount is one line of a dispensed breakdown.
type BanknoteCount struct {
	Value int64 `json:"value"`
	Count int64 `json:"count"`
}

// WithdrawResponse reports the outcome of a withdrawal. Status is false with outcome
// NO_EXACT_BREAKDOWN when the dispenser cannot pay the amount exactly.
type WithdrawResponse struct {
	Status    bool            `json:"status"`
	Outcome   domain.Outcome  `json:"outcome"`
	Amount    decimal.Decimal `json:"amount"`
	Banknotes []BanknoteCount `json:"banknotes"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToBanknoteCounts converts a breakdown into wire lines, largest face value first.
func ToBanknoteCounts(b domain.Breakdown) []BanknoteCount {
	lines := make([]BanknoteCount, 0, len(b))
	for _, d := range b.Denominations() {
		lines = append(lines, BanknoteCount{Value: int64(d), Count: b[d]})
	}
	return lines
}

// ToWithdrawResponse converts a withdrawal result and the post-withdrawal balance.
func ToWithdrawResponse(amount decimal.Decimal, result domain.WithdrawalResult, balance decimal.Decimal) WithdrawResponse {
	return WithdrawResponse{
		Status:    result.IsDispensed(),
		Outcome:   result.Outcome,
		Amount:    amount,
		Banknotes: ToBanknoteCounts(result.Breakdown),
		Balance:   balance,
	}
}
