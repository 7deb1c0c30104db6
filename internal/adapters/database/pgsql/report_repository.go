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

type PgxReportRepository struct {
	BaseRepository
}

// NewPgxReportRepository creates a new repository for monthly report data.
func NewPgxReportRepository(pool *pgxpool.Pool, retry RetryConfig) repositories.ReportRepositoryFacade {
	return &PgxReportRepository{BaseRepository{Pool: pool, Retry: retry}}
}

const reportColumns = `
	report_id, church_id, month, year,
	tithes, offerings, other_income, missions, special_offering,
	salaries, rent, utilities, other_expenses,
	total_income, total_expenses, national_fund_due, designated_total, operating_total, closing_balance,
	status, revision, bank_receipt_no, deposit_date, submitted_at, submitted_by, rejection_reason,
	posted, posted_at, posted_by,
	created_at, created_by, last_updated_at, last_updated_by`

func scanReport(row pgx.Row) (*domain.Report, error) {
	var rep domain.Report
	var status string
	var rejectionReason, postedBy *string
	err := row.Scan(
		&rep.ReportID,
		&rep.ChurchID,
		&rep.Month,
		&rep.Year,
		&rep.Amounts.Tithes,
		&rep.Amounts.Offerings,
		&rep.Amounts.OtherIncome,
		&rep.Amounts.Missions,
		&rep.Amounts.SpecialOffering,
		&rep.Amounts.Salaries,
		&rep.Amounts.Rent,
		&rep.Amounts.Utilities,
		&rep.Amounts.OtherExpenses,
		&rep.Totals.TotalIncome,
		&rep.Totals.TotalExpenses,
		&rep.Totals.NationalFundDue,
		&rep.Totals.DesignatedTotal,
		&rep.Totals.OperatingTotal,
		&rep.Totals.ClosingBalance,
		&status,
		&rep.Revision,
		&rep.BankReceiptNo,
		&rep.DepositDate,
		&rep.SubmittedAt,
		&rep.SubmittedBy,
		&rejectionReason,
		&rep.Posted,
		&rep.PostedAt,
		&postedBy,
		&rep.CreatedAt,
		&rep.CreatedBy,
		&rep.LastUpdatedAt,
		&rep.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	rep.Status, err = domain.ParseReportStatus(status)
	if err != nil {
		return nil, fmt.Errorf("corrupt report status: %w", err)
	}
	if rejectionReason != nil {
		rep.RejectionReason = *rejectionReason
	}
	if postedBy != nil {
		rep.PostedBy = *postedBy
	}
	return &rep, nil
}

// SaveReport inserts a new report row. The partial unique index on
// (church_id, month, year) for non-rejected rows is the backstop behind the
// one-report-per-period rule; a violation maps to ErrDuplicate.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.Report) error {
	query := `
		INSERT INTO reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26,
			$27, $28, $29,
			$30, $31, $32, $33);
	`
	return r.withTimeout(ctx, func(ctx context.Context) error {
		_, err := r.Pool.Exec(ctx, query,
			report.ReportID, report.ChurchID, report.Month, report.Year,
			report.Amounts.Tithes, report.Amounts.Offerings, report.Amounts.OtherIncome,
			report.Amounts.Missions, report.Amounts.SpecialOffering,
			report.Amounts.Salaries, report.Amounts.Rent, report.Amounts.Utilities, report.Amounts.OtherExpenses,
			report.Totals.TotalIncome, report.Totals.TotalExpenses, report.Totals.NationalFundDue,
			report.Totals.DesignatedTotal, report.Totals.OperatingTotal, report.Totals.ClosingBalance,
			string(report.Status), report.Revision, report.BankReceiptNo, report.DepositDate,
			report.SubmittedAt, report.SubmittedBy, nullIfEmpty(report.RejectionReason),
			report.Posted, report.PostedAt, nullIfEmpty(report.PostedBy),
			report.CreatedAt, report.CreatedBy, report.LastUpdatedAt, report.LastUpdatedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: report already exists for church %s period %d/%d",
					apperrors.ErrDuplicate, report.ChurchID, report.Month, report.Year)
			}
			return fmt.Errorf("failed to save report %s: %w", report.ReportID, err)
		}
		return nil
	})
}

// UpdateReportForResubmission replaces the figures of a rejected report and
// moves it back to submitted. The status predicate makes it a no-op against
// anything but a rejected row.
func (r *PgxReportRepository) UpdateReportForResubmission(ctx context.Context, report domain.Report) error {
	query := `
		UPDATE reports SET
			tithes = $2, offerings = $3, other_income = $4, missions = $5, special_offering = $6,
			salaries = $7, rent = $8, utilities = $9, other_expenses = $10,
			total_income = $11, total_expenses = $12, national_fund_due = $13,
			designated_total = $14, operating_total = $15, closing_balance = $16,
			status = $17, revision = $18, bank_receipt_no = $19, deposit_date = $20,
			submitted_at = $21, submitted_by = $22, rejection_reason = NULL,
			last_updated_at = $23, last_updated_by = $24
		WHERE report_id = $1 AND status = 'rejected';
	`
	return r.withTimeout(ctx, func(ctx context.Context) error {
		tag, err := r.Pool.Exec(ctx, query,
			report.ReportID,
			report.Amounts.Tithes, report.Amounts.Offerings, report.Amounts.OtherIncome,
			report.Amounts.Missions, report.Amounts.SpecialOffering,
			report.Amounts.Salaries, report.Amounts.Rent, report.Amounts.Utilities, report.Amounts.OtherExpenses,
			report.Totals.TotalIncome, report.Totals.TotalExpenses, report.Totals.NationalFundDue,
			report.Totals.DesignatedTotal, report.Totals.OperatingTotal, report.Totals.ClosingBalance,
			string(report.Status), report.Revision, report.BankReceiptNo, report.DepositDate,
			report.SubmittedAt, report.SubmittedBy,
			report.LastUpdatedAt, report.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to resubmit report %s: %w", report.ReportID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: report %s is not rejected", apperrors.ErrInvalidState, report.ReportID)
		}
		return nil
	})
}

// TransitionReportStatus is a compare-and-swap on the status column. A
// concurrent transition wins the race cleanly: the loser matches zero rows
// and surfaces ErrInvalidState instead of clobbering.
func (r *PgxReportRepository) TransitionReportStatus(ctx context.Context, reportID string, from, to domain.ReportStatus, reason string, actorUserID string, at time.Time) error {
	query := `
		UPDATE reports SET
			status = $3,
			rejection_reason = $4,
			last_updated_at = $5,
			last_updated_by = $6
		WHERE report_id = $1 AND status = $2;
	`
	return r.withTimeout(ctx, func(ctx context.Context) error {
		tag, err := r.Pool.Exec(ctx, query,
			reportID, string(from), string(to), nullIfEmpty(reason), at, actorUserID,
		)
		if err != nil {
			return fmt.Errorf("failed to transition report %s to %s: %w", reportID, to, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: report %s is not in status %s", apperrors.ErrInvalidState, reportID, from)
		}
		return nil
	})
}

// FindReportByID retrieves a report by its ID.
func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE report_id = $1;`

	var rep *domain.Report
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		rep, scanErr = scanReport(r.Pool.QueryRow(ctx, query, reportID))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report by ID %s: %w", reportID, err)
	}
	return rep, nil
}

// FindReportByPeriod retrieves the most recent report of a church for a
// period regardless of status. At most one non-rejected row can exist; the
// ordering puts it ahead of any rejected leftovers.
func (r *PgxReportRepository) FindReportByPeriod(ctx context.Context, churchID string, month, year int) (*domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE church_id = $1 AND month = $2 AND year = $3
		ORDER BY (status <> 'rejected') DESC, revision DESC
		LIMIT 1;
	`
	var rep *domain.Report
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		rep, scanErr = scanReport(r.Pool.QueryRow(ctx, query, churchID, month, year))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report for church %s period %d/%d: %w", churchID, month, year, err)
	}
	return rep, nil
}

// ListReports retrieves reports ordered by period descending, optionally
// filtered to one church.
func (r *PgxReportRepository) ListReports(ctx context.Context, churchID *string, limit, offset int) ([]domain.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE ($1::uuid IS NULL OR church_id = $1)
		ORDER BY year DESC, month DESC, church_id
		LIMIT $2 OFFSET $3;
	`
	var reports []domain.Report
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, churchID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()

		reports = []domain.Report{}
		for rows.Next() {
			rep, err := scanReport(rows)
			if err != nil {
				return fmt.Errorf("failed to scan report row: %w", err)
			}
			reports = append(reports, *rep)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ repositories.ReportRepositoryFacade = (*PgxReportRepository)(nil)
