package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation names the dispenser operation a journal entry records.
type Operation string

const (
	OperationWithdraw       Operation = "WITHDRAW"
	OperationDeposit        Operation = "DEPOSIT"
	OperationInsertSections Operation = "INSERT_SECTIONS"
)

// JournalEntry is one committed dispenser operation, kept as an audit trail.
// The journal is write-only: inventory and balances are never rebuilt from it.
type JournalEntry struct {
	EntryID   string          `json:"entryID"`   // UUID
	AccountID string          `json:"accountID"` // Empty for administrative operations
	Operation Operation       `json:"operation"`
	Amount    decimal.Decimal `json:"amount"`            // Requested (withdraw) or credited (deposit) amount
	Outcome   Outcome         `json:"outcome,omitempty"` // Withdrawals only
	Banknotes map[int64]int64 `json:"banknotes"`         // Face value -> count moved
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"` // Account ID or "admin"
}
