package pgsql

import (
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres journal. Accounts stay with accountRepo:
// balances live in memory and are seeded at startup.
func NewRepositoryProvider(dbPool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		JournalRepo: newPgxJournalRepository(dbPool),
	}
}
