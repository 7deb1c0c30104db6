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

type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new repository for user account data.
func NewPgxUserRepository(pool *pgxpool.Pool, retry RetryConfig) repositories.UserReader {
	return &PgxUserRepository{BaseRepository{Pool: pool, Retry: retry}}
}

// FindUserByEmail retrieves a user by email. Login is the only caller; it
// never retries so a typo'd password fails fast.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, name, password_hash, role, church_id, fund_id, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE email = $1;
	`
	var user domain.User
	var role string
	err := r.withTimeout(ctx, func(ctx context.Context) error {
		return r.Pool.QueryRow(ctx, query, email).Scan(
			&user.UserID,
			&user.Email,
			&user.Name,
			&user.PasswordHash,
			&role,
			&user.ChurchID,
			&user.FundID,
			&user.IsActive,
			&user.CreatedAt,
			&user.CreatedBy,
			&user.LastUpdatedAt,
			&user.LastUpdatedBy,
		)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	user.Role, err = domain.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("corrupt user role: %w", err)
	}
	return &user, nil
}

var _ repositories.UserReader = (*PgxUserRepository)(nil)
