package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/atm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	"github.com/SscSPs/atm_backend/internal/utils/pagination"
)

// JournalRepository keeps journal entries for the lifetime of the process.
type JournalRepository struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
}

// NewJournalRepository creates an empty journal.
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{}
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

func (r *JournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	banknotes := make(map[int64]int64, len(entry.Banknotes))
	for k, v := range entry.Banknotes {
		banknotes[k] = v
	}
	entry.Banknotes = banknotes

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// ListEntriesByAccount returns the account's entries ordered by (CreatedAt, EntryID) descending.
func (r *JournalRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	afterCursor := func(domain.JournalEntry) bool { return true }
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastEntryID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		afterCursor = func(e domain.JournalEntry) bool {
			if e.CreatedAt.Equal(lastCreatedAt) {
				return e.EntryID < lastEntryID
			}
			return e.CreatedAt.Before(lastCreatedAt)
		}
	}

	r.mu.RLock()
	matching := make([]domain.JournalEntry, 0)
	for _, e := range r.entries {
		if e.AccountID == accountID && afterCursor(e) {
			matching = append(matching, e)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matching, func(i, j int) bool {
		if matching[i].CreatedAt.Equal(matching[j].CreatedAt) {
			return matching[i].EntryID > matching[j].EntryID
		}
		return matching[i].CreatedAt.After(matching[j].CreatedAt)
	})

	if limit <= 0 || len(matching) <= limit {
		return matching, nil, nil
	}
	page := matching[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
	return page, &token, nil
}
