package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/repositories"
)

type PgxFundRepository struct {
	BaseRepository
}

// NewPgxFundRepository creates a new repository for fund directory data.
func NewPgxFundRepository(pool *pgxpool.Pool, retry RetryConfig) repositories.FundReader {
	return &PgxFundRepository{BaseRepository{Pool: pool, Retry: retry}}
}

const fundColumns = `
	fund_id, name, fund_type, description, balance_cache, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanFund(row pgx.Row) (*domain.Fund, error) {
	var f domain.Fund
	var fundType string
	err := row.Scan(
		&f.FundID,
		&f.Name,
		&fundType,
		&f.Description,
		&f.BalanceCache,
		&f.IsActive,
		&f.CreatedAt,
		&f.CreatedBy,
		&f.LastUpdatedAt,
		&f.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	f.Type = domain.FundType(fundType)
	return &f, nil
}

// FindFundByID retrieves a fund by its ID.
func (r *PgxFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM funds WHERE fund_id = $1;`

	var fund *domain.Fund
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		fund, scanErr = scanFund(r.Pool.QueryRow(ctx, query, fundID))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fund by ID %s: %w", fundID, err)
	}
	return fund, nil
}

// FindFundByName retrieves a fund by its canonical name.
func (r *PgxFundRepository) FindFundByName(ctx context.Context, name string) (*domain.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM funds WHERE name = $1;`

	var fund *domain.Fund
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		fund, scanErr = scanFund(r.Pool.QueryRow(ctx, query, name))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fund by name %q: %w", name, err)
	}
	return fund, nil
}

// ListActiveFunds retrieves every active fund ordered by name.
func (r *PgxFundRepository) ListActiveFunds(ctx context.Context) ([]domain.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM funds WHERE is_active ORDER BY name;`

	var funds []domain.Fund
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		funds = []domain.Fund{}
		for rows.Next() {
			fund, err := scanFund(rows)
			if err != nil {
				return fmt.Errorf("failed to scan fund row: %w", err)
			}
			funds = append(funds, *fund)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list active funds: %w", err)
	}
	return funds, nil
}

var _ repositories.FundReader = (*PgxFundRepository)(nil)
