package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/services"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/dto"
)

type FundServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	fundRepo   *MockFundReader
	ledgerRepo *MockLedgerRepository
	service    portssvc.FundSvcFacade

	fundID   string
	director domain.Actor
	national domain.Actor
}

func (suite *FundServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.fundRepo = new(MockFundReader)
	suite.ledgerRepo = new(MockLedgerRepository)
	suite.service = services.NewFundService(suite.fundRepo, suite.ledgerRepo, services.NewAuthorizationService())

	suite.fundID = uuid.NewString()
	suite.director = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleFundDirector, FundID: &suite.fundID}
	suite.national = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleNationalTreasurer}
}

func (suite *FundServiceTestSuite) activeFund() *domain.Fund {
	return &domain.Fund{FundID: suite.fundID, Name: "Misiones", Type: domain.FundDesignated, IsActive: true}
}

// --- Balance ---

func (suite *FundServiceTestSuite) TestGetFundBalanceZeroWithNoTransactions() {
	balance := &domain.FundBalance{
		FundID:            suite.fundID,
		FundName:          "Misiones",
		CalculatedBalance: decimal.Zero,
		StoredBalance:     decimal.Zero,
	}

	suite.fundRepo.On("FindFundByID", suite.ctx, suite.fundID).Return(suite.activeFund(), nil)
	suite.ledgerRepo.On("GetFundBalance", suite.ctx, suite.fundID, (*time.Time)(nil), (*time.Time)(nil)).Return(balance, nil)

	result, err := suite.service.GetFundBalance(suite.ctx, suite.director, suite.fundID, nil, nil)

	suite.NoError(err)
	suite.True(result.CalculatedBalance.IsZero())
}

func (suite *FundServiceTestSuite) TestGetFundBalanceOtherFundIsForbidden() {
	otherFund := uuid.NewString()

	_, err := suite.service.GetFundBalance(suite.ctx, suite.director, otherFund, nil, nil)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "GetFundBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestGetFundBalanceInvertedWindowIsValidationError() {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, -1, 0)

	_, err := suite.service.GetFundBalance(suite.ctx, suite.director, suite.fundID, &from, &to)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Fund events ---

func (suite *FundServiceTestSuite) TestRecordFundEventCredit() {
	req := dto.RecordFundEventRequest{
		AmountIn: decimal.NewFromInt(250_000),
		Concept:  "Donación congreso juvenil",
	}

	suite.fundRepo.On("FindFundByID", suite.ctx, suite.fundID).Return(suite.activeFund(), nil)
	suite.ledgerRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil)

	txn, err := suite.service.RecordFundEvent(suite.ctx, suite.director, suite.fundID, req)

	suite.NoError(err)
	suite.True(txn.AmountIn.Equal(decimal.NewFromInt(250_000)))
	suite.True(txn.AmountOut.IsZero())
	suite.Equal(suite.director.UserID, txn.CreatedBy)
	suite.ledgerRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestRecordFundEventBothAmountsIsValidationError() {
	req := dto.RecordFundEventRequest{
		AmountIn:  decimal.NewFromInt(100),
		AmountOut: decimal.NewFromInt(100),
		Concept:   "ambiguous",
	}

	_, err := suite.service.RecordFundEvent(suite.ctx, suite.director, suite.fundID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestRecordFundEventNeitherAmountIsValidationError() {
	req := dto.RecordFundEventRequest{Concept: "empty"}

	_, err := suite.service.RecordFundEvent(suite.ctx, suite.director, suite.fundID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundServiceTestSuite) TestRecordFundEventInactiveFundIsValidationError() {
	fund := suite.activeFund()
	fund.IsActive = false
	req := dto.RecordFundEventRequest{AmountOut: decimal.NewFromInt(5000), Concept: "pago"}

	suite.fundRepo.On("FindFundByID", suite.ctx, suite.fundID).Return(fund, nil)

	_, err := suite.service.RecordFundEvent(suite.ctx, suite.director, suite.fundID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundServiceTestSuite) TestRecordFundEventOtherFundIsForbidden() {
	req := dto.RecordFundEventRequest{AmountIn: decimal.NewFromInt(100), Concept: "x"}

	_, err := suite.service.RecordFundEvent(suite.ctx, suite.director, uuid.NewString(), req)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

// --- Listing ---

func (suite *FundServiceTestSuite) TestListFundsDirectorSeesOwnFundOnly() {
	funds := []domain.Fund{
		*suite.activeFund(),
		{FundID: uuid.NewString(), Name: "Fondo Nacional", Type: domain.FundNational, IsActive: true},
	}

	suite.fundRepo.On("ListActiveFunds", suite.ctx).Return(funds, nil)

	visible, err := suite.service.ListFunds(suite.ctx, suite.director)

	suite.NoError(err)
	suite.Len(visible, 1)
	suite.Equal(suite.fundID, visible[0].FundID)
}

func (suite *FundServiceTestSuite) TestListFundsNationalSeesAll() {
	funds := []domain.Fund{
		*suite.activeFund(),
		{FundID: uuid.NewString(), Name: "Fondo Nacional", Type: domain.FundNational, IsActive: true},
	}

	suite.fundRepo.On("ListActiveFunds", suite.ctx).Return(funds, nil)

	visible, err := suite.service.ListFunds(suite.ctx, suite.national)

	suite.NoError(err)
	suite.Len(visible, 2)
}

func (suite *FundServiceTestSuite) TestListFundTransactions() {
	txns := []domain.Transaction{{TransactionID: uuid.NewString(), FundID: suite.fundID}}

	suite.fundRepo.On("FindFundByID", suite.ctx, suite.fundID).Return(suite.activeFund(), nil)
	suite.ledgerRepo.On("ListTransactionsByFund", suite.ctx, suite.fundID, (*time.Time)(nil), (*time.Time)(nil), 20, 0).Return(txns, nil)

	result, err := suite.service.ListFundTransactions(suite.ctx, suite.director, suite.fundID, nil, nil, 0, 0)

	suite.NoError(err)
	suite.Len(result, 1)
}

// --- Reconciliation ---

func (suite *FundServiceTestSuite) TestReconcileClassifiesRows() {
	rows := []domain.ReconciliationRow{
		{
			FundID:            suite.fundID,
			FundName:          "Misiones",
			FundType:          domain.FundDesignated,
			StoredBalance:     decimal.NewFromInt(500_000),
			CalculatedBalance: decimal.NewFromInt(500_000),
		},
		{
			FundID:            uuid.NewString(),
			FundName:          "Fondo Nacional",
			FundType:          domain.FundNational,
			StoredBalance:     decimal.NewFromInt(1_000_000),
			CalculatedBalance: decimal.NewFromInt(999_900),
		},
	}

	suite.ledgerRepo.On("ReconciliationRows", suite.ctx).Return(rows, nil)

	result, err := suite.service.Reconcile(suite.ctx, suite.national)

	suite.NoError(err)
	suite.Len(result.Funds, 2)
	suite.Len(result.Discrepancies, 1)

	suite.Equal(domain.ReconciliationBalanced, result.Funds[0].Status)
	suite.True(result.Funds[0].Difference.IsZero())

	suite.Equal(domain.ReconciliationDiscrepancy, result.Funds[1].Status)
	suite.True(result.Funds[1].Difference.Equal(decimal.NewFromInt(100)))
	suite.Equal("Fondo Nacional", result.Discrepancies[0].FundName)
}

func (suite *FundServiceTestSuite) TestReconcileEmptyLedgerIsBalanced() {
	rows := []domain.ReconciliationRow{
		{
			FundID:            suite.fundID,
			FundName:          "Misiones",
			FundType:          domain.FundDesignated,
			StoredBalance:     decimal.Zero,
			CalculatedBalance: decimal.Zero,
		},
	}

	suite.ledgerRepo.On("ReconciliationRows", suite.ctx).Return(rows, nil)

	result, err := suite.service.Reconcile(suite.ctx, suite.national)

	suite.NoError(err)
	suite.Len(result.Funds, 1)
	suite.Empty(result.Discrepancies)
	suite.Equal(domain.ReconciliationBalanced, result.Funds[0].Status)
}

func (suite *FundServiceTestSuite) TestReconcileRequiresNationalAccess() {
	_, err := suite.service.Reconcile(suite.ctx, suite.director)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "ReconciliationRows", mock.Anything)
}

func TestFundServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundServiceTestSuite))
}
