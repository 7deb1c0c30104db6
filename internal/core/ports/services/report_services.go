package services

import (
	"context"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/dto"
)

// ReportReaderSvc defines read operations over monthly reports.
type ReportReaderSvc interface {
	// GetReport retrieves one report, enforcing the caller's scope.
	GetReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, error)

	// ListReports retrieves reports visible to the caller. Church-scoped
	// callers see only their own church; out-of-scope rows are silently
	// excluded, never an error.
	ListReports(ctx context.Context, actor domain.Actor, params dto.ListReportsParams) ([]domain.Report, error)

	// GetReportTransactions retrieves the ledger entries a report's posting
	// produced. Empty until the report is posted.
	GetReportTransactions(ctx context.Context, actor domain.Actor, reportID string) ([]domain.Transaction, error)
}

// ReportWriterSvc defines the approval-lifecycle operations.
type ReportWriterSvc interface {
	// SubmitReport validates and submits a new monthly report, or resubmits a
	// rejected one for the same period with a bumped revision.
	SubmitReport(ctx context.Context, actor domain.Actor, req dto.SubmitReportRequest) (*domain.Report, error)

	// ApproveReport moves a submitted or pending report to approved, then
	// triggers the ledger posting. A posting failure leaves the report
	// approved and unposted; the returned error tells the caller a retry via
	// PostReport is safe.
	ApproveReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, []domain.Transaction, error)

	// RejectReport moves a submitted or pending report to rejected. A reason
	// is mandatory.
	RejectReport(ctx context.Context, actor domain.Actor, reportID string, reason string) (*domain.Report, error)

	// PostReport explicitly posts an approved, not-yet-posted report. A
	// second attempt on an already-posted report fails with
	// apperrors.ErrConflict and writes nothing.
	PostReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, []domain.Transaction, error)
}

// ReportSvcFacade combines all report service interfaces.
type ReportSvcFacade interface {
	ReportReaderSvc
	ReportWriterSvc
}
