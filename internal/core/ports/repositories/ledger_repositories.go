package repositories

import (
	"context"
	"time"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
)

// LedgerReader defines read operations over fund transactions. Every read
// runs against a single-statement snapshot so a balance is never torn
// mid-insert.
type LedgerReader interface {
	// FindTransactionsByReportID retrieves all transactions a report posting
	// produced, in creation order.
	FindTransactionsByReportID(ctx context.Context, reportID string) ([]domain.Transaction, error)

	// ListTransactionsByFund retrieves a fund's transactions over an optional
	// date window.
	ListTransactionsByFund(ctx context.Context, fundID string, from, to *time.Time, limit, offset int) ([]domain.Transaction, error)

	// GetFundBalance computes a fund's balance from its transaction log over
	// an optional date window, alongside the stored cache value.
	GetFundBalance(ctx context.Context, fundID string, from, to *time.Time) (*domain.FundBalance, error)

	// ReconciliationRows returns stored and calculated balances for every
	// active fund in one consistent snapshot.
	ReconciliationRows(ctx context.Context) ([]domain.ReconciliationRow, error)
}

// LedgerWriter defines write operations on the transaction ledger.
type LedgerWriter interface {
	// SavePostingBatch commits a posting batch, its transactions and the
	// report's posted flags as one atomic unit. The report row is locked for
	// the duration; re-checks under the lock surface apperrors.ErrConflict
	// (already posted, duplicate batch) or apperrors.ErrInvalidState (report
	// not approved). Any insert failure rolls the whole batch back.
	SavePostingBatch(ctx context.Context, batch domain.PostingBatch, transactions []domain.Transaction) error

	// SaveTransaction inserts a single manual fund event entry.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
