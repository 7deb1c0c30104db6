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
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/middleware"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/utils/accounting"
)

// ledgerPoster commits the fund transactions an approved report's breakdown
// calls for, as one atomic unit.
type ledgerPoster struct {
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	fundRepo    portsrepo.FundReader
	nationalPct decimal.Decimal
	decimals    int32
}

// NewLedgerPoster creates the ledger posting service. The national fund
// percentage and currency rounding unit are injected, never hard-coded.
func NewLedgerPoster(ledgerRepo portsrepo.LedgerRepositoryFacade, fundRepo portsrepo.FundReader, nationalPct decimal.Decimal, currencyDecimals int32) portssvc.LedgerPosterSvc {
	return &ledgerPoster{
		ledgerRepo:  ledgerRepo,
		fundRepo:    fundRepo,
		nationalPct: nationalPct,
		decimals:    currencyDecimals,
	}
}

var _ portssvc.LedgerPosterSvc = (*ledgerPoster)(nil)

// PostApproved builds one crediting transaction per non-zero breakdown
// component and commits batch, transactions and report flags atomically.
// The repository re-checks status and the batch uniqueness backstop under a
// row lock, so concurrent posting attempts collapse to one success and
// ErrConflict for the rest.
func (p *ledgerPoster) PostApproved(ctx context.Context, report *domain.Report, actor domain.Actor) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if report.Posted {
		return nil, fmt.Errorf("%w: report %s is already posted", apperrors.ErrConflict, report.ReportID)
	}
	if report.Status != domain.ReportApproved {
		return nil, fmt.Errorf("%w: report %s is %s, not approved", apperrors.ErrInvalidState, report.ReportID, report.Status)
	}

	breakdown, err := accounting.CalculateBreakdown(report.Amounts, p.nationalPct, p.decimals)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	batch := domain.PostingBatch{
		BatchID:   uuid.NewString(),
		ReportID:  report.ReportID,
		CreatedBy: actor.UserID,
		CreatedAt: now,
	}

	transactions := make([]domain.Transaction, 0, len(breakdown.Contributions))
	for _, contribution := range breakdown.Contributions {
		fund, err := p.fundRepo.FindFundByName(ctx, contribution.FundName)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: target fund %q does not exist", apperrors.ErrPosting, contribution.FundName)
			}
			return nil, fmt.Errorf("resolving fund %q: %w", contribution.FundName, err)
		}
		if !fund.IsActive {
			return nil, fmt.Errorf("%w: target fund %q is inactive", apperrors.ErrPosting, contribution.FundName)
		}

		churchID := report.ChurchID
		reportID := report.ReportID
		batchID := batch.BatchID
		transactions = append(transactions, domain.Transaction{
			TransactionID: uuid.NewString(),
			FundID:        fund.FundID,
			ChurchID:      &churchID,
			ReportID:      &reportID,
			BatchID:       &batchID,
			AmountIn:      contribution.Amount,
			AmountOut:     decimal.Zero,
			Concept:       fmt.Sprintf("%s %s", contribution.Concept, report.Period()),
			CreatedBy:     actor.UserID,
			CreatedAt:     now,
		})
	}

	if err := p.ledgerRepo.SavePostingBatch(ctx, batch, transactions); err != nil {
		if errors.Is(err, apperrors.ErrConflict) || errors.Is(err, apperrors.ErrInvalidState) {
			return nil, err
		}
		logger.Error("Posting batch commit failed",
			slog.String("report_id", report.ReportID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPosting, err)
	}

	report.Posted = true
	report.PostedAt = &now
	report.PostedBy = actor.UserID
	report.Status = domain.ReportPosted

	logger.Info("Report posted",
		slog.String("report_id", report.ReportID),
		slog.Int("transactions", len(transactions)),
		slog.String("posted_by", actor.UserID),
	)
	return transactions, nil
}
