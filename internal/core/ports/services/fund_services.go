package services

import (
	"context"
	"time"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/dto"
)

// FundSvcFacade exposes fund balances, manual fund events and the
// reconciliation diagnostic.
type FundSvcFacade interface {
	// ListFunds retrieves the active funds visible to the caller.
	ListFunds(ctx context.Context, actor domain.Actor) ([]domain.Fund, error)

	// GetFundBalance computes a fund's balance from its transaction log over
	// an optional date window, next to the externally maintained cache.
	GetFundBalance(ctx context.Context, actor domain.Actor, fundID string, from, to *time.Time) (*domain.FundBalance, error)

	// ListFundTransactions retrieves a fund's ledger entries over an optional
	// date window, newest first.
	ListFundTransactions(ctx context.Context, actor domain.Actor, fundID string, from, to *time.Time, limit, offset int) ([]domain.Transaction, error)

	// RecordFundEvent appends a manual ledger entry to a fund. Fund-scoped
	// directors may only write to their assigned fund.
	RecordFundEvent(ctx context.Context, actor domain.Actor, fundID string, req dto.RecordFundEventRequest) (*domain.Transaction, error)

	// Reconcile compares stored and calculated balances for every active
	// fund. Read-only; discrepancies are reported, never corrected.
	Reconcile(ctx context.Context, actor domain.Actor) (*dto.ReconciliationResponse, error)
}

// AuthorizerSvc is the authorization gate: it resolves whether an actor may
// perform an operation against a target scope. Denials surface as
// apperrors.ErrForbidden.
type AuthorizerSvc interface {
	Authorize(ctx context.Context, actor domain.Actor, op domain.Operation, scope domain.OperationScope) error
}

// AuthSvcFacade is the login boundary that turns credentials into a signed
// actor token.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
