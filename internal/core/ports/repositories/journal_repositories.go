package repositories

import (
	"context"

	"github.com/SscSPs/atm_backend/internal/core/domain"
)

// JournalReader defines read operations for the dispenser operation journal
type JournalReader interface {
	// ListEntriesByAccount retrieves a page of entries for an account, newest first, using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for the dispenser operation journal
type JournalWriter interface {
	// SaveEntry appends one committed operation to the journal.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}
