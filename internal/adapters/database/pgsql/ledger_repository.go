package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/repositories"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// NewPgxLedgerRepository creates a new repository for fund transaction data.
func NewPgxLedgerRepository(pool *pgxpool.Pool, retry RetryConfig) repositories.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: pool, Retry: retry}}
}

const transactionColumns = `
	transaction_id, fund_id, church_id, report_id, batch_id,
	amount_in, amount_out, concept, created_by, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.FundID,
		&txn.ChurchID,
		&txn.ReportID,
		&txn.BatchID,
		&txn.AmountIn,
		&txn.AmountOut,
		&txn.Concept,
		&txn.CreatedBy,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// SavePostingBatch commits a posting batch, its transactions and the
// report's posted flags as one atomic unit. The report row is locked first
// so concurrent postings of the same report serialize; the loser fails its
// re-check under the lock and nothing it wrote survives.
func (r *PgxLedgerRepository) SavePostingBatch(ctx context.Context, batch domain.PostingBatch, transactions []domain.Transaction) error {
	return r.withTimeout(ctx, func(ctx context.Context) error {
		tx, err := r.Pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("failed to begin posting transaction: %w", err)
		}
		defer func() {
			_ = tx.Rollback(ctx)
		}()

		// 1. Lock the report row and re-check its state under the lock.
		var status string
		var posted bool
		lockQuery := `SELECT status, posted FROM reports WHERE report_id = $1 FOR UPDATE;`
		err = tx.QueryRow(ctx, lockQuery, batch.ReportID).Scan(&status, &posted)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: report %s", apperrors.ErrNotFound, batch.ReportID)
			}
			return fmt.Errorf("failed to lock report %s: %w", batch.ReportID, err)
		}
		if posted {
			return fmt.Errorf("%w: report %s is already posted", apperrors.ErrConflict, batch.ReportID)
		}
		if domain.ReportStatus(status) != domain.ReportApproved {
			return fmt.Errorf("%w: report %s is %s, not approved", apperrors.ErrInvalidState, batch.ReportID, status)
		}

		// 2. Insert the batch. The unique index on report_id is the backstop
		// should another path slip past the lock.
		batchQuery := `
			INSERT INTO posting_batches (batch_id, report_id, created_by, created_at)
			VALUES ($1, $2, $3, $4);
		`
		_, err = tx.Exec(ctx, batchQuery, batch.BatchID, batch.ReportID, batch.CreatedBy, batch.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: report %s already has a posting batch", apperrors.ErrConflict, batch.ReportID)
			}
			return fmt.Errorf("failed to insert posting batch %s: %w", batch.BatchID, err)
		}

		// 3. Insert all transaction entries in one round trip.
		pgxBatch := &pgx.Batch{}
		txnQuery := `
			INSERT INTO transactions (` + transactionColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		for _, txn := range transactions {
			pgxBatch.Queue(txnQuery,
				txn.TransactionID,
				txn.FundID,
				txn.ChurchID,
				txn.ReportID,
				txn.BatchID,
				txn.AmountIn,
				txn.AmountOut,
				txn.Concept,
				txn.CreatedBy,
				txn.CreatedAt,
			)
		}
		br := tx.SendBatch(ctx, pgxBatch)
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to insert transactions for batch %s: %w", batch.BatchID, err)
		}

		// 4. Flip the report to posted inside the same unit.
		updateQuery := `
			UPDATE reports SET
				status = 'posted', posted = TRUE, posted_at = $2, posted_by = $3,
				last_updated_at = $2, last_updated_by = $3
			WHERE report_id = $1;
		`
		_, err = tx.Exec(ctx, updateQuery, batch.ReportID, batch.CreatedAt, batch.CreatedBy)
		if err != nil {
			return fmt.Errorf("failed to mark report %s posted: %w", batch.ReportID, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("failed to commit posting batch %s: %w", batch.BatchID, err)
		}
		return nil
	})
}

// SaveTransaction inserts a single manual fund event entry.
func (r *PgxLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	return r.withTimeout(ctx, func(ctx context.Context) error {
		_, err := r.Pool.Exec(ctx, query,
			txn.TransactionID,
			txn.FundID,
			txn.ChurchID,
			txn.ReportID,
			txn.BatchID,
			txn.AmountIn,
			txn.AmountOut,
			txn.Concept,
			txn.CreatedBy,
			txn.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
		}
		return nil
	})
}

// FindTransactionsByReportID retrieves all transactions a report posting
// produced, in creation order.
func (r *PgxLedgerRepository) FindTransactionsByReportID(ctx context.Context, reportID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE report_id = $1
		ORDER BY created_at, transaction_id;
	`
	var transactions []domain.Transaction
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, reportID)
		if err != nil {
			return err
		}
		defer rows.Close()

		transactions = []domain.Transaction{}
		for rows.Next() {
			txn, err := scanTransaction(rows)
			if err != nil {
				return fmt.Errorf("failed to scan transaction row: %w", err)
			}
			transactions = append(transactions, *txn)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for report %s: %w", reportID, err)
	}
	return transactions, nil
}

// ListTransactionsByFund retrieves a fund's transactions over an optional
// date window, newest first.
func (r *PgxLedgerRepository) ListTransactionsByFund(ctx context.Context, fundID string, from, to *time.Time, limit, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE fund_id = $1
			AND ($2::timestamptz IS NULL OR created_at >= $2)
			AND ($3::timestamptz IS NULL OR created_at <= $3)
		ORDER BY created_at DESC, transaction_id
		LIMIT $4 OFFSET $5;
	`
	var transactions []domain.Transaction
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, fundID, from, to, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()

		transactions = []domain.Transaction{}
		for rows.Next() {
			txn, err := scanTransaction(rows)
			if err != nil {
				return fmt.Errorf("failed to scan transaction row: %w", err)
			}
			transactions = append(transactions, *txn)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for fund %s: %w", fundID, err)
	}
	return transactions, nil
}

// GetFundBalance computes a fund's balance from its transaction log as one
// statement, so the sum can never be torn by a concurrent posting.
func (r *PgxLedgerRepository) GetFundBalance(ctx context.Context, fundID string, from, to *time.Time) (*domain.FundBalance, error) {
	query := `
		SELECT f.fund_id, f.name, f.balance_cache,
			COALESCE((
				SELECT SUM(t.amount_in - t.amount_out)
				FROM transactions t
				WHERE t.fund_id = f.fund_id
					AND ($2::timestamptz IS NULL OR t.created_at >= $2)
					AND ($3::timestamptz IS NULL OR t.created_at <= $3)
			), 0)
		FROM funds f
		WHERE f.fund_id = $1;
	`
	var bal domain.FundBalance
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.Pool.QueryRow(ctx, query, fundID, from, to).Scan(
			&bal.FundID,
			&bal.FundName,
			&bal.StoredBalance,
			&bal.CalculatedBalance,
		)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to compute balance for fund %s: %w", fundID, err)
	}
	return &bal, nil
}

// ReconciliationRows returns stored and calculated balances for every active
// fund in one consistent snapshot. Status classification is left to the
// service.
func (r *PgxLedgerRepository) ReconciliationRows(ctx context.Context) ([]domain.ReconciliationRow, error) {
	query := `
		SELECT f.fund_id, f.name, f.fund_type, f.balance_cache,
			COALESCE(SUM(t.amount_in - t.amount_out), 0)
		FROM funds f
		LEFT JOIN transactions t ON t.fund_id = f.fund_id
		WHERE f.is_active
		GROUP BY f.fund_id, f.name, f.fund_type, f.balance_cache
		ORDER BY f.name;
	`
	var result []domain.ReconciliationRow
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		result = []domain.ReconciliationRow{}
		for rows.Next() {
			var row domain.ReconciliationRow
			var fundType string
			if err := rows.Scan(
				&row.FundID,
				&row.FundName,
				&fundType,
				&row.StoredBalance,
				&row.CalculatedBalance,
			); err != nil {
				return fmt.Errorf("failed to scan reconciliation row: %w", err)
			}
			row.FundType = domain.FundType(fundType)
			result = append(result, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query reconciliation rows: %w", err)
	}
	return result, nil
}

var _ repositories.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)
