package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	portsrepo "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/repositories"
	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
)

// --- Mock ReportRepository ---

type MockReportRepository struct {
	mock.Mock
}

var _ portsrepo.ReportRepositoryFacade = (*MockReportRepository)(nil)

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.Report, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepository) FindReportByPeriod(ctx context.Context, churchID string, month, year int) (*domain.Report, error) {
	args := m.Called(ctx, churchID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepository) ListReports(ctx context.Context, churchID *string, limit, offset int) ([]domain.Report, error) {
	args := m.Called(ctx, churchID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Report), args.Error(1)
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) UpdateReportForResubmission(ctx context.Context, report domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) TransitionReportStatus(ctx context.Context, reportID string, from, to domain.ReportStatus, reason string, actorUserID string, at time.Time) error {
	args := m.Called(ctx, reportID, from, to, reason, actorUserID, at)
	return args.Error(0)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindTransactionsByReportID(ctx context.Context, reportID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByFund(ctx context.Context, fundID string, from, to *time.Time, limit, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, fundID, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) GetFundBalance(ctx context.Context, fundID string, from, to *time.Time) (*domain.FundBalance, error) {
	args := m.Called(ctx, fundID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundBalance), args.Error(1)
}

func (m *MockLedgerRepository) ReconciliationRows(ctx context.Context) ([]domain.ReconciliationRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationRow), args.Error(1)
}

func (m *MockLedgerRepository) SavePostingBatch(ctx context.Context, batch domain.PostingBatch, transactions []domain.Transaction) error {
	args := m.Called(ctx, batch, transactions)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

// --- Mock FundReader ---

type MockFundReader struct {
	mock.Mock
}

var _ portsrepo.FundReader = (*MockFundReader)(nil)

func (m *MockFundReader) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundReader) FindFundByName(ctx context.Context, name string) (*domain.Fund, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundReader) ListActiveFunds(ctx context.Context) ([]domain.Fund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fund), args.Error(1)
}

// --- Mock ChurchReader ---

type MockChurchReader struct {
	mock.Mock
}

var _ portsrepo.ChurchReader = (*MockChurchReader)(nil)

func (m *MockChurchReader) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Church), args.Error(1)
}

// --- Mock UserReader ---

type MockUserReader struct {
	mock.Mock
}

var _ portsrepo.UserReader = (*MockUserReader)(nil)

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock LedgerPoster ---

type MockLedgerPoster struct {
	mock.Mock
}

var _ portssvc.LedgerPosterSvc = (*MockLedgerPoster)(nil)

func (m *MockLedgerPoster) PostApproved(ctx context.Context, report *domain.Report, actor domain.Actor) ([]domain.Transaction, error) {
	args := m.Called(ctx, report, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
