package services

import (
	"context"
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
)

// fundService serves fund balances from the transaction log, records manual
// fund events, and runs the reconciliation diagnostic.
type fundService struct {
	fundRepo   portsrepo.FundReader
	ledgerRepo portsrepo.LedgerRepositoryFacade
	authorizer portssvc.AuthorizerSvc
}

// NewFundService creates the fund balance and reconciliation service.
func NewFundService(fundRepo portsrepo.FundReader, ledgerRepo portsrepo.LedgerRepositoryFacade, authorizer portssvc.AuthorizerSvc) portssvc.FundSvcFacade {
	return &fundService{
		fundRepo:   fundRepo,
		ledgerRepo: ledgerRepo,
		authorizer: authorizer,
	}
}

var _ portssvc.FundSvcFacade = (*fundService)(nil)

// ListFunds lists active funds. National callers see all; a fund director
// sees only their assigned fund; everyone else gets an empty list. List
// operations silently exclude out-of-scope rows rather than erroring.
func (s *fundService) ListFunds(ctx context.Context, actor domain.Actor) ([]domain.Fund, error) {
	funds, err := s.fundRepo.ListActiveFunds(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role.IsNational() {
		return funds, nil
	}

	visible := []domain.Fund{}
	for _, fund := range funds {
		if actor.OverseesFund(fund.FundID) {
			visible = append(visible, fund)
		}
	}
	return visible, nil
}

// GetFundBalance derives the fund's balance from its transaction history
// over an optional date window. The balance over no transactions is zero.
// The stored cache rides along for comparison only.
func (s *fundService) GetFundBalance(ctx context.Context, actor domain.Actor, fundID string, from, to *time.Time) (*domain.FundBalance, error) {
	if err := s.authorizer.Authorize(ctx, actor, domain.OpViewFundBalance, domain.OperationScope{FundID: fundID}); err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: balance window end precedes start", apperrors.ErrValidation)
	}

	if _, err := s.fundRepo.FindFundByID(ctx, fundID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.GetFundBalance(ctx, fundID, from, to)
}

// ListFundTransactions retrieves the fund's ledger entries over an optional
// date window, newest first. Same scope rule as the balance query.
func (s *fundService) ListFundTransactions(ctx context.Context, actor domain.Actor, fundID string, from, to *time.Time, limit, offset int) ([]domain.Transaction, error) {
	if err := s.authorizer.Authorize(ctx, actor, domain.OpViewFundBalance, domain.OperationScope{FundID: fundID}); err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: window end precedes start", apperrors.ErrValidation)
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	if _, err := s.fundRepo.FindFundByID(ctx, fundID); err != nil {
		return nil, err
	}
	return s.ledgerRepo.ListTransactionsByFund(ctx, fundID, from, to, limit, offset)
}

// RecordFundEvent appends one manual ledger entry. Exactly one of the two
// amounts must be positive, both whole and non-negative; corrections are
// reversing entries, never edits.
func (s *fundService) RecordFundEvent(ctx context.Context, actor domain.Actor, fundID string, req dto.RecordFundEventRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.authorizer.Authorize(ctx, actor, domain.OpRecordFundEvent, domain.OperationScope{FundID: fundID}); err != nil {
		return nil, err
	}
	if err := validateEventAmounts(req.AmountIn, req.AmountOut); err != nil {
		return nil, err
	}

	fund, err := s.fundRepo.FindFundByID(ctx, fundID)
	if err != nil {
		return nil, err
	}
	if !fund.IsActive {
		return nil, fmt.Errorf("%w: fund %s is inactive", apperrors.ErrValidation, fundID)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		FundID:        fund.FundID,
		ChurchID:      req.ChurchID,
		AmountIn:      req.AmountIn,
		AmountOut:     req.AmountOut,
		Concept:       req.Concept,
		CreatedBy:     actor.UserID,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.ledgerRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("saving fund event: %w", err)
	}

	logger.Info("Fund event recorded",
		slog.String("fund_id", fund.FundID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("created_by", actor.UserID),
	)
	return &txn, nil
}

// Reconcile computes {stored, calculated, difference} for every active fund
// and classifies each as balanced or discrepancy. A fund with no
// transactions and a zero cache is balanced by definition. Diagnostic only:
// nothing is auto-corrected.
func (s *fundService) Reconcile(ctx context.Context, actor domain.Actor) (*dto.ReconciliationResponse, error) {
	if err := s.authorizer.Authorize(ctx, actor, domain.OpViewReconciliation, domain.OperationScope{}); err != nil {
		return nil, err
	}

	rows, err := s.ledgerRepo.ReconciliationRows(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.ReconciliationResponse{Funds: make([]domain.ReconciliationRow, 0, len(rows))}
	for _, row := range rows {
		row.Difference = row.StoredBalance.Sub(row.CalculatedBalance)
		if row.Difference.IsZero() {
			row.Status = domain.ReconciliationBalanced
		} else {
			row.Status = domain.ReconciliationDiscrepancy
		}
		res.Funds = append(res.Funds, row)
		if row.Status == domain.ReconciliationDiscrepancy {
			res.Discrepancies = append(res.Discrepancies, row)
		}
	}
	return res, nil
}

func validateEventAmounts(in, out decimal.Decimal) error {
	if in.IsNegative() || out.IsNegative() {
		return fmt.Errorf("%w: amounts must not be negative", apperrors.ErrValidation)
	}
	if !in.IsInteger() || !out.IsInteger() {
		return fmt.Errorf("%w: amounts must be whole base currency units", apperrors.ErrValidation)
	}
	if in.IsPositive() == out.IsPositive() {
		return fmt.Errorf("%w: exactly one of amountIn/amountOut must be positive", apperrors.ErrValidation)
	}
	return nil
}
