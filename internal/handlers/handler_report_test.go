package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/apperrors"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/dto"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/handlers"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/middleware"
)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GetReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, error) {
	args := m.Called(ctx, actor, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) ListReports(ctx context.Context, actor domain.Actor, params dto.ListReportsParams) ([]domain.Report, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Report), args.Error(1)
}

func (m *MockReportService) GetReportTransactions(ctx context.Context, actor domain.Actor, reportID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, actor, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReportService) SubmitReport(ctx context.Context, actor domain.Actor, req dto.SubmitReportRequest) (*domain.Report, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) ApproveReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, []domain.Transaction, error) {
	args := m.Called(ctx, actor, reportID)
	var report *domain.Report
	if args.Get(0) != nil {
		report = args.Get(0).(*domain.Report)
	}
	var txns []domain.Transaction
	if args.Get(1) != nil {
		txns = args.Get(1).([]domain.Transaction)
	}
	return report, txns, args.Error(2)
}

func (m *MockReportService) RejectReport(ctx context.Context, actor domain.Actor, reportID string, reason string) (*domain.Report, error) {
	args := m.Called(ctx, actor, reportID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportService) PostReport(ctx context.Context, actor domain.Actor, reportID string) (*domain.Report, []domain.Transaction, error) {
	args := m.Called(ctx, actor, reportID)
	var report *domain.Report
	if args.Get(0) != nil {
		report = args.Get(0).(*domain.Report)
	}
	var txns []domain.Transaction
	if args.Get(1) != nil {
		txns = args.Get(1).([]domain.Transaction)
	}
	return report, txns, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Test Suite ---
type ReportHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockReportService *MockReportService
	jwtSecret         string
}

// generateTestToken signs a token the auth middleware accepts. The role and
// optional church scope land in the resolved Actor.
func (suite *ReportHandlerTestSuite) generateTestToken(userID string, role domain.Role, churchID *string) string {
	claims := middleware.ActorClaims{
		Role:     string(role),
		ChurchID: churchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "tesoreria-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockReportService = new(MockReportService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReportRoutes(v1, suite.mockReportService)
}

func (suite *ReportHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleReport(churchID string, status domain.ReportStatus) *domain.Report {
	now := time.Now()
	return &domain.Report{
		ReportID: uuid.NewString(),
		ChurchID: churchID,
		Month:    3,
		Year:     2025,
		Amounts: domain.CategoryAmounts{
			Tithes:    decimal.NewFromInt(2_000_000),
			Offerings: decimal.NewFromInt(1_000_000),
		},
		Totals: domain.ReportTotals{
			TotalIncome:     decimal.NewFromInt(3_000_000),
			NationalFundDue: decimal.NewFromInt(300_000),
		},
		Status:      status,
		Revision:    1,
		SubmittedAt: &now,
		AuditFields: domain.AuditFields{CreatedAt: now},
	}
}

// --- Test Cases ---

func (suite *ReportHandlerTestSuite) TestSubmitReport_Success() {
	churchID := uuid.NewString()
	userID := uuid.NewString()
	expected := sampleReport(churchID, domain.ReportSubmitted)

	suite.mockReportService.On("SubmitReport",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(a domain.Actor) bool {
			return a.UserID == userID && a.Role == domain.RoleSecretary && a.ChurchID != nil && *a.ChurchID == churchID
		}),
		mock.MatchedBy(func(r dto.SubmitReportRequest) bool {
			return r.ChurchID == churchID && r.Month == 3 && r.Year == 2025
		}),
	).Return(expected, nil).Once()

	body, _ := json.Marshal(dto.SubmitReportRequest{
		ChurchID: churchID,
		Month:    3,
		Year:     2025,
		Amounts: dto.CategoryAmountsRequest{
			Tithes:    decimal.NewFromInt(2_000_000),
			Offerings: decimal.NewFromInt(1_000_000),
		},
		BankReceiptNo: "BR-0042",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleSecretary, &churchID))

	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ReportResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ReportID, resp.ReportID)
	suite.Equal(domain.ReportSubmitted, resp.Status)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestSubmitReport_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "SubmitReport")
}

func (suite *ReportHandlerTestSuite) TestSubmitReport_InvalidMonth() {
	churchID := uuid.NewString()
	body := []byte(fmt.Sprintf(`{"churchID":%q,"month":13,"year":2025,"amounts":{}}`, churchID))
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleSecretary, &churchID))

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "SubmitReport")
}

func (suite *ReportHandlerTestSuite) TestSubmitReport_OtherChurchForbidden() {
	churchID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockReportService.On("SubmitReport",
		mock.AnythingOfType("*context.valueCtx"), mock.Anything, mock.Anything,
	).Return(nil, fmt.Errorf("church out of scope: %w", apperrors.ErrForbidden)).Once()

	body, _ := json.Marshal(dto.SubmitReportRequest{
		ChurchID: churchID,
		Month:    3,
		Year:     2025,
		Amounts:  dto.CategoryAmountsRequest{Tithes: decimal.NewFromInt(500_000)},
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	otherChurch := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID, domain.RoleSecretary, &otherChurch))

	w := suite.serve(req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestSubmitReport_DuplicatePeriodConflict() {
	churchID := uuid.NewString()

	suite.mockReportService.On("SubmitReport",
		mock.AnythingOfType("*context.valueCtx"), mock.Anything, mock.Anything,
	).Return(nil, fmt.Errorf("report for period 3/2025 already exists: %w", apperrors.ErrDuplicate)).Once()

	body, _ := json.Marshal(dto.SubmitReportRequest{
		ChurchID: churchID,
		Month:    3,
		Year:     2025,
		Amounts:  dto.CategoryAmountsRequest{Tithes: decimal.NewFromInt(500_000)},
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleSecretary, &churchID))

	w := suite.serve(req)

	suite.Equal(http.StatusConflict, w.Code)
	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "3/2025")
}

func (suite *ReportHandlerTestSuite) TestGetReport_NotFound() {
	reportID := uuid.NewString()

	suite.mockReportService.On("GetReport",
		mock.AnythingOfType("*context.valueCtx"), mock.Anything, reportID,
	).Return(nil, fmt.Errorf("report %s: %w", reportID, apperrors.ErrNotFound)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/"+reportID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleNationalTreasurer, nil))

	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReportHandlerTestSuite) TestApproveReport_Success() {
	churchID := uuid.NewString()
	posted := sampleReport(churchID, domain.ReportPosted)
	posted.Posted = true
	reportID := posted.ReportID
	batchID := uuid.NewString()
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			FundID:        uuid.NewString(),
			ChurchID:      &churchID,
			ReportID:      &reportID,
			BatchID:       &batchID,
			AmountIn:      decimal.NewFromInt(300_000),
			Concept:       "Aporte fondo nacional 3/2025",
			CreatedAt:     time.Now(),
		},
	}

	suite.mockReportService.On("ApproveReport",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(a domain.Actor) bool { return a.Role == domain.RoleNationalTreasurer }),
		reportID,
	).Return(posted, txns, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports/"+reportID+"/approve", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleNationalTreasurer, nil))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostingResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(reportID, resp.Report.ReportID)
	suite.True(resp.Report.Posted)
	suite.Len(resp.Transactions, 1)
	suite.Equal("Aporte fondo nacional 3/2025", resp.Transactions[0].Concept)
	suite.mockReportService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestApproveReport_InvalidState() {
	reportID := uuid.NewString()

	suite.mockReportService.On("ApproveReport",
		mock.AnythingOfType("*context.valueCtx"), mock.Anything, reportID,
	).Return(nil, nil, fmt.Errorf("report is draft: %w", apperrors.ErrInvalidState)).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports/"+reportID+"/approve", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleNationalTreasurer, nil))

	w := suite.serve(req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *ReportHandlerTestSuite) TestApproveReport_PostingFailureSurfaces() {
	reportID := uuid.NewString()

	suite.mockReportService.On("ApproveReport",
		mock.AnythingOfType("*context.valueCtx"), mock.Anything, reportID,
	).Return(nil, nil, fmt.Errorf("ledger commit failed: %w", apperrors.ErrPosting)).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports/"+reportID+"/approve", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleAdmin, nil))

	w := suite.serve(req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp handlers.ErrorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "ledger commit failed")
}

func (suite *ReportHandlerTestSuite) TestRejectReport_Success() {
	churchID := uuid.NewString()
	rejected := sampleReport(churchID, domain.ReportRejected)
	rejected.RejectionReason = "Deposit slip missing"

	suite.mockReportService.On("RejectReport",
		mock.AnythingOfType("*context.valueCtx"), mock.Anything, rejected.ReportID, "Deposit slip missing",
	).Return(rejected, nil).Once()

	body, _ := json.Marshal(dto.RejectReportRequest{Reason: "Deposit slip missing"})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports/"+rejected.ReportID+"/reject", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleNationalTreasurer, nil))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReportResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ReportRejected, resp.Status)
	suite.Equal("Deposit slip missing", resp.RejectionReason)
}

func (suite *ReportHandlerTestSuite) TestRejectReport_MissingReason() {
	reportID := uuid.NewString()

	body := []byte(`{}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports/"+reportID+"/reject", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleNationalTreasurer, nil))

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportService.AssertNotCalled(suite.T(), "RejectReport")
}

func (suite *ReportHandlerTestSuite) TestPostReport_AlreadyPostedConflict() {
	reportID := uuid.NewString()

	suite.mockReportService.On("PostReport",
		mock.AnythingOfType("*context.valueCtx"), mock.Anything, reportID,
	).Return(nil, nil, fmt.Errorf("report already posted: %w", apperrors.ErrConflict)).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/reports/"+reportID+"/post", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleAdmin, nil))

	w := suite.serve(req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ReportHandlerTestSuite) TestListReports_Success() {
	churchID := uuid.NewString()
	reports := []domain.Report{*sampleReport(churchID, domain.ReportSubmitted), *sampleReport(churchID, domain.ReportPosted)}

	suite.mockReportService.On("ListReports",
		mock.AnythingOfType("*context.valueCtx"),
		mock.Anything,
		mock.MatchedBy(func(p dto.ListReportsParams) bool { return p.Limit == 10 && p.Offset == 0 }),
	).Return(reports, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports?limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleSecretary, &churchID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListReportsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Reports, 2)
}

func (suite *ReportHandlerTestSuite) TestGetReportTransactions_Success() {
	churchID := uuid.NewString()
	reportID := uuid.NewString()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), FundID: uuid.NewString(), ReportID: &reportID, AmountIn: decimal.NewFromInt(300_000), Concept: "Ofrenda misiones 3/2025", CreatedAt: time.Now()},
	}

	suite.mockReportService.On("GetReportTransactions",
		mock.AnythingOfType("*context.valueCtx"), mock.Anything, reportID,
	).Return(txns, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/"+reportID+"/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString(), domain.RoleSecretary, &churchID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TransactionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.Equal("Ofrenda misiones 3/2025", resp[0].Concept)
}

// --- Run Test Suite ---
func TestReportHandler(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
