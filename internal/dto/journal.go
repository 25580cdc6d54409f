package dto

import (
	"time"

	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListJournalParams defines query parameters for listing journal entries.
type ListJournalParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID   string           `json:"entryID"`
	Operation domain.Operation `json:"operation"`
	Amount    decimal.Decimal  `json:"amount"`
	Outcome   domain.Outcome   `json:"outcome,omitempty"`
	Banknotes []BanknoteCount  `json:"banknotes"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ListJournalResponse wraps a page of journal entries.
type ListJournalResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	b := make(domain.Breakdown, len(e.Banknotes))
	for v, n := range e.Banknotes {
		b[domain.Denomination(v)] = n
	}
	return JournalEntryResponse{
		EntryID:   e.EntryID,
		Operation: e.Operation,
		Amount:    e.Amount,
		Outcome:   e.Outcome,
		Banknotes: ToBanknoteCounts(b),
		CreatedAt: e.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToJournalEntryResponse(&e)
	}
	return responses
}
