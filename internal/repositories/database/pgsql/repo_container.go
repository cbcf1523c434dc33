package pgsql

import (
	portsrepo "github.com/SscSPs/healthconnect_wallet/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WalletRepo: newPgxWalletRepository(dbPool),
	}
}
