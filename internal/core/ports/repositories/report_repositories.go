package repositories

import (
	"context"
	"time"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
)

// ReportReader defines read operations for monthly report data.
type ReportReader interface {
	// FindReportByID retrieves a specific report by its unique identifier.
	FindReportByID(ctx context.Context, reportID string) (*domain.Report, error)

	// FindReportByPeriod retrieves the most recent report of a church for a
	// period regardless of status, or apperrors.ErrNotFound when none exists.
	FindReportByPeriod(ctx context.Context, churchID string, month, year int) (*domain.Report, error)

	// ListReports retrieves reports, optionally filtered to one church.
	// Passing nil for churchID lists across all churches.
	ListReports(ctx context.Context, churchID *string, limit, offset int) ([]domain.Report, error)
}

// ReportWriter defines write operations for monthly report data.
type ReportWriter interface {
	// SaveReport inserts a new report row. A duplicate non-rejected period for
	// the same church surfaces as apperrors.ErrConflict.
	SaveReport(ctx context.Context, report domain.Report) error

	// UpdateReportForResubmission replaces the amounts, totals and submission
	// metadata of a rejected report and moves it back to submitted with a
	// bumped revision. Fails with apperrors.ErrInvalidState when the row is no
	// longer rejected.
	UpdateReportForResubmission(ctx context.Context, report domain.Report) error

	// TransitionReportStatus moves a report from one status to another as a
	// compare-and-swap on the status column. Zero rows updated surfaces as
	// apperrors.ErrInvalidState. Reason is persisted for rejections.
	TransitionReportStatus(ctx context.Context, reportID string, from, to domain.ReportStatus, reason string, actorUserID string, at time.Time) error
}

// ReportRepositoryFacade combines all report repository interfaces.
type ReportRepositoryFacade interface {
	ReportReader
	ReportWriter
}
