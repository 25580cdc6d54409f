package mapping

import (
	"sort"

	"github.com/SscSPs/atm_backend/internal/core/domain"
	"github.com/SscSPs/atm_backend/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to its row and banknote lines.
// Lines are ordered by face value, largest first.
func ToModelJournalEntry(d domain.JournalEntry) (models.JournalEntry, []models.JournalBanknote) {
	m := models.JournalEntry{
		EntryID:   d.EntryID,
		Operation: string(d.Operation),
		Amount:    d.Amount,
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
	}
	if d.AccountID != "" {
		accountID := d.AccountID
		m.AccountID = &accountID
	}
	if d.Outcome != "" {
		outcome := string(d.Outcome)
		m.Outcome = &outcome
	}

	lines := make([]models.JournalBanknote, 0, len(d.Banknotes))
	for faceValue, n := range d.Banknotes {
		if n == 0 {
			continue
		}
		lines = append(lines, models.JournalBanknote{EntryID: d.EntryID, FaceValue: faceValue, Count: n})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].FaceValue > lines[j].FaceValue })
	return m, lines
}

// ToDomainJournalEntry converts a row and its banknote lines to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry, lines []models.JournalBanknote) domain.JournalEntry {
	d := domain.JournalEntry{
		EntryID:   m.EntryID,
		Operation: domain.Operation(m.Operation),
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
		Banknotes: make(map[int64]int64, len(lines)),
	}
	if m.AccountID != nil {
		d.AccountID = *m.AccountID
	}
	if m.Outcome != nil {
		d.Outcome = domain.Outcome(*m.Outcome)
	}
	for _, l := range lines {
		d.Banknotes[l.FaceValue] = l.Count
	}
	return d
}
