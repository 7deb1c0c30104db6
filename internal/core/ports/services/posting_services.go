package services

import (
	"context"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
)

// LedgerPosterSvc turns an approved report's breakdown into an atomically
// committed set of fund transactions.
type LedgerPosterSvc interface {
	// PostApproved commits the posting batch for an approved, not-yet-posted
	// report. All-or-nothing: a failed insert rolls back the whole batch and
	// leaves the report unposted. A report already posted fails with
	// apperrors.ErrConflict.
	PostApproved(ctx context.Context, report *domain.Report, actor domain.Actor) ([]domain.Transaction, error)
}
