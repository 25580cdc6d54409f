package pgsql

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/SscSPs/atm_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	"github.com/SscSPs/atm_backend/internal/models"
	"github.com/SscSPs/atm_backend/internal/utils/mapping"
	"github.com/SscSPs/atm_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for the dispenser operation journal.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveEntry inserts the entry and its banknote lines in one transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	modelEntry, lines := mapping.ToModelJournalEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	entryQuery := `
		INSERT INTO dispenser_journal (entry_id, account_id, operation, amount, outcome, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.AccountID,
		modelEntry.Operation,
		modelEntry.Amount,
		modelEntry.Outcome,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	if len(lines) > 0 {
		batch := &pgx.Batch{}
		lineQuery := `
			INSERT INTO dispenser_journal_banknotes (entry_id, face_value, count)
			VALUES ($1, $2, $3);
		`
		for _, l := range lines {
			batch.Queue(lineQuery, l.EntryID, l.FaceValue, l.Count)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return apperrors.NewAppError(http.StatusInternalServerError, "failed to insert banknotes for journal entry "+modelEntry.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// ListEntriesByAccount retrieves a page of an account's entries, newest first, using token-based pagination.
func (r *PgxJournalRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	// Fetch one extra row to learn whether another page exists
	fetchLimit := limit + 1

	baseQuery := `
		SELECT entry_id, account_id, operation, amount, outcome, created_at, created_by
		FROM dispenser_journal
		WHERE account_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, entry_id DESC`

	args := []interface{}{accountID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastEntryID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, decodeErr
		}
		query += ` AND (created_at, entry_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastEntryID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal for account "+accountID, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.EntryID, &e.AccountID, &e.Operation, &e.Amount, &e.Outcome, &e.CreatedAt, &e.CreatedBy); err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan journal row for account "+accountID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating journal rows for account "+accountID, err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
		nextTokenVal = &token
	}

	lines, err := r.findBanknotes(ctx, entries)
	if err != nil {
		return nil, nil, err
	}

	result := make([]domain.JournalEntry, len(entries))
	for i, e := range entries {
		result[i] = mapping.ToDomainJournalEntry(e, lines[e.EntryID])
	}
	return result, nextTokenVal, nil
}

func (r *PgxJournalRepository) findBanknotes(ctx context.Context, entries []models.JournalEntry) (map[string][]models.JournalBanknote, error) {
	out := make(map[string][]models.JournalBanknote, len(entries))
	if len(entries) == 0 {
		return out, nil
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}

	query := `
		SELECT entry_id, face_value, count
		FROM dispenser_journal_banknotes
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, face_value DESC;
	`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal banknotes", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.JournalBanknote
		if err := rows.Scan(&l.EntryID, &l.FaceValue, &l.Count); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan journal banknote row", err)
		}
		out[l.EntryID] = append(out[l.EntryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating journal banknote rows", err)
	}
	return out, nil
}
