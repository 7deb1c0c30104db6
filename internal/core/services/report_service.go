package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	portsrepo "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/repositories"
	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/dto"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/middleware"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/utils/accounting"
)

// reportService drives the report lifecycle: submission, the approval state
// machine, and the approve-then-post orchestration.
type reportService struct {
	reportRepo  portsrepo.ReportRepositoryFacade
	ledgerRepo  portsrepo.LedgerReader
	churchRepo  portsrepo.ChurchReader
	authorizer  portssvc.AuthorizerSvc
	poster      portssvc.LedgerPosterSvc
	nationalPct decimal.Decimal
	decimals    int32
}

// NewReportService creates the report lifecycle service.
func NewReportService(
	reportRepo portsrepo.ReportRepositoryFacade,
	ledgerRepo portsrepo.LedgerReader,
	churchRepo portsrepo.ChurchReader,
	authorizer portssvc.AuthorizerSvc,
	poster portssvc.LedgerPosterSvc,
	nationalPct decimal.Decimal,
	currencyDecimals int32,
) portssvc.ReportSvcFacade {
	return &reportService{
		reportRepo:  reportRepo,
		ledgerRepo:  ledgerRepo,
		churchRepo:  churchRepo,
		authorizer:  authorizer,
		poster:      poster,
		nationalPct: nationalPct,
		decimals:    currencyDecimals,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// SubmitReport validates the input, computes the allocation totals and
// creates the report in submitted status. Submitting over a rejected report
// for the same period resubmits it in place with a bumped revision; any
// other existing report for the period is a conflict.
func (s *reportService) SubmitReport(ctx context.Context, actor domain.Actor, req dto.SubmitReportRequest) (*domain.Report, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.Authorize(ctx, actor, domain.OpSubmitReport, domain.OperationScope{ChurchID: req.ChurchID}); err != nil {
		return nil, err
	}

	church, err := s.churchRepo.FindChurchByID(ctx, req.ChurchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: church %s not found", apperrors.ErrValidation, req.ChurchID)
		}
		return nil, fmt.Errorf("validating church: %w", err)
	}
	if !church.IsActive {
		return nil, fmt.Errorf("%w: church %s is inactive", apperrors.ErrValidation, req.ChurchID)
	}

	amounts := req.Amounts.ToDomain()
	breakdown, err := accounting.CalculateBreakdown(amounts, s.nationalPct, s.decimals)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	existing, err := s.reportRepo.FindReportByPeriod(ctx, req.ChurchID, req.Month, req.Year)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("checking period: %w", err)
	}
	if existing != nil {
		if existing.Status != domain.ReportRejected {
			return nil, fmt.Errorf("%w: a report for church %s period %d/%d already exists", apperrors.ErrDuplicate, req.ChurchID, req.Month, req.Year)
		}
		return s.resubmit(ctx, actor, existing, req, amounts, breakdown, now)
	}

	report := domain.Report{
		ReportID:      uuid.NewString(),
		ChurchID:      req.ChurchID,
		Month:         req.Month,
		Year:          req.Year,
		Amounts:       amounts,
		Totals:        breakdown.Totals(),
		Status:        domain.ReportSubmitted,
		Revision:      1,
		BankReceiptNo: req.BankReceiptNo,
		DepositDate:   req.DepositDate,
		SubmittedAt:   &now,
		SubmittedBy:   actor.UserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		// The partial unique index on (church, month, year) is the backstop
		// against a racing duplicate submission.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a report for church %s period %d/%d already exists", apperrors.ErrDuplicate, req.ChurchID, req.Month, req.Year)
		}
		return nil, fmt.Errorf("saving report: %w", err)
	}

	logger.Info("Report submitted",
		slog.String("report_id", report.ReportID),
		slog.String("church_id", report.ChurchID),
		slog.String("period", report.Period()),
	)
	return &report, nil
}

// resubmit reuses the rejected row: same report ID, new amounts, bumped
// revision, back to submitted.
func (s *reportService) resubmit(ctx context.Context, actor domain.Actor, existing *domain.Report, req dto.SubmitReportRequest, amounts domain.CategoryAmounts, breakdown *accounting.Breakdown, now time.Time) (*domain.Report, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	updated := *existing
	updated.Amounts = amounts
	updated.Totals = breakdown.Totals()
	updated.Status = domain.ReportSubmitted
	updated.Revision = existing.Revision + 1
	updated.BankReceiptNo = req.BankReceiptNo
	updated.DepositDate = req.DepositDate
	updated.RejectionReason = ""
	updated.SubmittedAt = &now
	updated.SubmittedBy = actor.UserID
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actor.UserID

	if err := s.reportRepo.UpdateReportForResubmission(ctx, updated); err != nil {
		return nil, fmt.Errorf("resubmitting report %s: %w", existing.ReportID, err)
	}

	logger.Info("Report resubmitted",
		slog.String("report_id", updated.ReportID),
		slog.Int("revision", updated.Revision),
	)
	return &updated, nil
}

// GetReport retrieves one report. Church-scoped callers only see their own
// church's reports.
func (s *reportService) GetReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.Authorize(ctx, actor, domain.OpViewReport, domain.OperationScope{ChurchID: report.ChurchID}); err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports lists what the caller may see. Out-of-scope rows are silently
// excluded: a church-scoped caller gets their church, anyone else without
// national access gets an empty list, never an error.
func (s *reportService) ListReports(ctx context.Context, actor domain.Actor, params dto.ListReportsParams) ([]domain.Report, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	if actor.Role.IsNational() {
		return s.reportRepo.ListReports(ctx, nil, limit, params.Offset)
	}
	if actor.ChurchID != nil {
		return s.reportRepo.ListReports(ctx, actor.ChurchID, limit, params.Offset)
	}
	return []domain.Report{}, nil
}

// GetReportTransactions retrieves the ledger entries a report's posting
// produced, after the same scope check as GetReport.
func (s *reportService) GetReportTransactions(ctx context.Context, actor domain.Actor, reportID string) ([]domain.Transaction, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizer.Authorize(ctx, actor, domain.OpViewReport, domain.OperationScope{ChurchID: report.ChurchID}); err != nil {
		return nil, err
	}
	return s.ledgerRepo.FindTransactionsByReportID(ctx, reportID)
}

// ApproveReport moves a submitted or pending report to approved and then
// triggers the posting. The approval commits on its own; a posting failure
// surfaces as ErrPosting with the report left approved and unposted, safe to
// retry through PostReport.
func (s *reportService) ApproveReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, []domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.Authorize(ctx, actor, domain.OpApproveReport, domain.OperationScope{}); err != nil {
		return nil, nil, err
	}

	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, nil, err
	}
	if !domain.CanTransition(report.Status, domain.ReportApproved) {
		return nil, nil, fmt.Errorf("%w: cannot approve a report in status %s", apperrors.ErrInvalidState, report.Status)
	}

	now := time.Now().UTC()
	if err := s.reportRepo.TransitionReportStatus(ctx, reportID, report.Status, domain.ReportApproved, "", actor.UserID, now); err != nil {
		return nil, nil, err
	}
	report.Status = domain.ReportApproved
	report.LastUpdatedAt = now
	report.LastUpdatedBy = actor.UserID

	transactions, err := s.poster.PostApproved(ctx, report, actor)
	if err != nil {
		logger.Warn("Report approved but posting failed; explicit post retry is safe",
			slog.String("report_id", reportID),
			slog.String("error", err.Error()),
		)
		return report, nil, fmt.Errorf("report %s approved but not posted (retry is safe): %w", reportID, err)
	}

	return report, transactions, nil
}

// RejectReport moves a submitted or pending report to rejected. The reason
// is mandatory and persisted so the church can correct and resubmit.
func (s *reportService) RejectReport(ctx context.Context, actor domain.Actor, reportID string, reason string) (*domain.Report, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.Authorize(ctx, actor, domain.OpRejectReport, domain.OperationScope{}); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}

	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(report.Status, domain.ReportRejected) {
		return nil, fmt.Errorf("%w: cannot reject a report in status %s", apperrors.ErrInvalidState, report.Status)
	}

	now := time.Now().UTC()
	if err := s.reportRepo.TransitionReportStatus(ctx, reportID, report.Status, domain.ReportRejected, reason, actor.UserID, now); err != nil {
		return nil, err
	}
	report.Status = domain.ReportRejected
	report.RejectionReason = reason
	report.LastUpdatedAt = now
	report.LastUpdatedBy = actor.UserID

	logger.Info("Report rejected",
		slog.String("report_id", reportID),
		slog.String("rejected_by", actor.UserID),
	)
	return report, nil
}

// PostReport explicitly posts an approved report. This is the retry path
// after an approve whose posting leg failed; only admins may call it.
func (s *reportService) PostReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, []domain.Transaction, error) {
	if err := s.authorizer.Authorize(ctx, actor, domain.OpPostReport, domain.OperationScope{}); err != nil {
		return nil, nil, err
	}

	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, nil, err
	}

	transactions, err := s.poster.PostApproved(ctx, report, actor)
	if err != nil {
		return nil, nil, err
	}
	return report, transactions, nil
}
