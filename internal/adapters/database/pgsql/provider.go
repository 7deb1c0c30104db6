package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/repositories"
)

// NewProvider wires every pgsql repository over one shared pool and one
// retry policy.
func NewProvider(pool *pgxpool.Pool, retry RetryConfig) *repositories.Provider {
	return &repositories.Provider{
		Report: NewPgxReportRepository(pool, retry),
		Ledger: NewPgxLedgerRepository(pool, retry),
		Fund:   NewPgxFundRepository(pool, retry),
		Church: NewPgxChurchRepository(pool, retry),
		User:   NewPgxUserRepository(pool, retry),
	}
}
