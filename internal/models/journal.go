package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the dispenser_journal row.
type JournalEntry struct {
	EntryID   string          `json:"entryID"`
	AccountID *string         `json:"accountID"` // NULL for administrative operations
	Operation string          `json:"operation"`
	Amount    decimal.Decimal `json:"amount"`
	Outcome   *string         `json:"outcome"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"`
}

// JournalBanknote is one dispenser_journal_banknotes row: the count of one face value moved by an entry.
type JournalBanknote struct {
	EntryID   string `json:"entryID"`
	FaceValue int64  `json:"faceValue"`
	Count     int64  `json:"count"`
}
