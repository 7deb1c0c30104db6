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

type PgxChurchRepository struct {
	BaseRepository
}

// NewPgxChurchRepository creates a new read-only repository over the church
// directory.
func NewPgxChurchRepository(pool *pgxpool.Pool, retry RetryConfig) repositories.ChurchReader {
	return &PgxChurchRepository{BaseRepository{Pool: pool, Retry: retry}}
}

// FindChurchByID retrieves a church by its ID.
func (r *PgxChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	query := `
		SELECT church_id, name, city, pastor_name, phone, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM churches
		WHERE church_id = $1;
	`
	var church domain.Church
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.Pool.QueryRow(ctx, query, churchID).Scan(
			&church.ChurchID,
			&church.Name,
			&church.City,
			&church.PastorName,
			&church.Phone,
			&church.IsActive,
			&church.CreatedAt,
			&church.CreatedBy,
			&church.LastUpdatedAt,
			&church.LastUpdatedBy,
		)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find church by ID %s: %w", churchID, err)
	}
	return &church, nil
}

var _ repositories.ChurchReader = (*PgxChurchRepository)(nil)
