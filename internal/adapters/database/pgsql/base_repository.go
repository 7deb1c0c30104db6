package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
)

// RetryConfig bounds how store calls behave under transient failure: every
// call carries a query timeout, reads are retried with exponential backoff
// plus jitter up to MaxRetries, then the call fails loudly. No silent
// fallback to stale data.
type RetryConfig struct {
	QueryTimeout time.Duration
	MaxRetries   uint64
	BaseDelay    time.Duration
}

// BaseRepository provides the pool and the retry/timeout plumbing shared by
// all repositories.
type BaseRepository struct {
	Pool  *pgxpool.Pool
	Retry RetryConfig
}

// withTimeout bounds a single store call. Used directly for writes, which
// are never retried internally: a write retry after an ambiguous failure
// could double-apply or misreport a uniqueness conflict.
func (r *BaseRepository) withTimeout(ctx context.Context, op func(ctx context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, r.Retry.QueryTimeout)
	defer cancel()

	err := op(cctx)
	if err != nil && isTransient(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrTransientStore, err)
	}
	return err
}

// withRetry runs a read-only store call under the retry budget. Transient
// failures back off exponentially with jitter; anything else aborts
// immediately.
func (r *BaseRepository) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.Retry.BaseDelay
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, r.Retry.MaxRetries), ctx)

	err := backoff.Retry(func() error {
		cctx, cancel := context.WithTimeout(ctx, r.Retry.QueryTimeout)
		defer cancel()

		if err := op(cctx); err != nil {
			if isTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		return nil
	}, policy)

	if err != nil && isTransient(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrTransientStore, err)
	}
	return err
}

// isTransient reports whether an error is a timeout or connection failure
// worth retrying.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exceptions.
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08"
	}
	return false
}

// isUniqueViolation reports whether an error is a unique constraint
// violation, the backstop behind duplicate periods and double postings.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
