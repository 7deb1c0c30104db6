package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/middleware"
)

// scopeRule says which target an operation is bound to.
type scopeRule int

const (
	scopeNone   scopeRule = iota // no target; minimum role is the whole gate
	scopeChurch                  // target church must match the actor's, unless national
	scopeFund                    // target fund must match the actor's, unless national
)

// operationRule is one row of the declarative authorization table.
type operationRule struct {
	minRole domain.Role
	scope   scopeRule
}

// operationRules maps every gated operation to its minimum role and scope
// rule. Central by design: no role check lives anywhere else.
var operationRules = map[domain.Operation]operationRule{
	domain.OpSubmitReport:       {minRole: domain.RoleSecretary, scope: scopeChurch},
	domain.OpViewReport:         {minRole: domain.RoleSecretary, scope: scopeChurch},
	domain.OpApproveReport:      {minRole: domain.RoleNationalTreasurer, scope: scopeNone},
	domain.OpRejectReport:       {minRole: domain.RoleNationalTreasurer, scope: scopeNone},
	domain.OpPostReport:         {minRole: domain.RoleAdmin, scope: scopeNone},
	domain.OpViewFundBalance:    {minRole: domain.RoleFundDirector, scope: scopeFund},
	domain.OpRecordFundEvent:    {minRole: domain.RoleFundDirector, scope: scopeFund},
	domain.OpViewReconciliation: {minRole: domain.RoleNationalTreasurer, scope: scopeNone},
}

// authorizationService is the authorization gate. It resolves the actor's
// role and scope against the operation table and allows or denies.
type authorizationService struct{}

// NewAuthorizationService creates the authorization gate.
func NewAuthorizationService() portssvc.AuthorizerSvc {
	return &authorizationService{}
}

var _ portssvc.AuthorizerSvc = (*authorizationService)(nil)

// Authorize allows the operation when the actor's level meets the
// operation's minimum AND the scope rule holds: church-scoped targets need a
// matching church, fund-scoped targets a matching fund, and national-level
// actors pass any scope. Denial is apperrors.ErrForbidden.
func (s *authorizationService) Authorize(ctx context.Context, actor domain.Actor, op domain.Operation, scope domain.OperationScope) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	rule, ok := operationRules[op]
	if !ok {
		logger.Error("Operation missing from authorization table", slog.String("operation", string(op)))
		return fmt.Errorf("%w: unknown operation %s", apperrors.ErrForbidden, op)
	}

	if !actor.Role.AtLeast(rule.minRole) {
		logger.Warn("Denied: role below operation minimum",
			slog.String("operation", string(op)),
			slog.String("role", string(actor.Role)),
			slog.String("user_id", actor.UserID),
		)
		return fmt.Errorf("%w: role %s may not %s", apperrors.ErrForbidden, actor.Role, op)
	}

	if actor.Role.IsNational() {
		return nil
	}

	switch rule.scope {
	case scopeNone:
		// Reaching here means the minimum role is national-level or admin,
		// and the actor is neither.
		return fmt.Errorf("%w: %s requires national-level access", apperrors.ErrForbidden, op)
	case scopeChurch:
		if scope.ChurchID == "" || !actor.InChurch(scope.ChurchID) {
			logger.Warn("Denied: church scope mismatch",
				slog.String("operation", string(op)),
				slog.String("user_id", actor.UserID),
				slog.String("target_church_id", scope.ChurchID),
			)
			return fmt.Errorf("%w: actor is not scoped to church %s", apperrors.ErrForbidden, scope.ChurchID)
		}
	case scopeFund:
		// Fund directors act only on fund-event entries for their assigned
		// fund, never on arbitrary report postings.
		if actor.Role != domain.RoleFundDirector {
			return fmt.Errorf("%w: %s requires fund or national scope", apperrors.ErrForbidden, op)
		}
		if scope.FundID == "" || !actor.OverseesFund(scope.FundID) {
			logger.Warn("Denied: fund scope mismatch",
				slog.String("operation", string(op)),
				slog.String("user_id", actor.UserID),
				slog.String("target_fund_id", scope.FundID),
			)
			return fmt.Errorf("%w: actor is not scoped to fund %s", apperrors.ErrForbidden, scope.FundID)
		}
	}

	return nil
}
