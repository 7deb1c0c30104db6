package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/dto"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/middleware"
)

// reportHandler handles HTTP requests for the monthly report lifecycle.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

func newReportHandler(reportService portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{reportService: reportService}
}

// RegisterReportRoutes registers report lifecycle routes.
func RegisterReportRoutes(group *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := group.Group("/reports")
	{
		reports.POST("", h.submitReport)
		reports.GET("", h.listReports)
		reports.GET("/:reportID", h.getReport)
		reports.GET("/:reportID/transactions", h.getReportTransactions)
		reports.POST("/:reportID/approve", h.approveReport)
		reports.POST("/:reportID/reject", h.rejectReport)
		reports.POST("/:reportID/post", h.postReport)
	}
}

// submitReport godoc
// @Summary Submit a monthly report
// @Description Submits a church's monthly report, or resubmits a rejected one for the same period with a bumped revision.
// @Tags reports
// @Accept json
// @Produce json
// @Param report body dto.SubmitReportRequest true "Report figures and deposit metadata"
// @Success 201 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "A report for the period already exists"
// @Router /reports [post]
func (h *reportHandler) submitReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for submitReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	report, err := h.reportService.SubmitReport(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit report")
		return
	}

	c.JSON(http.StatusCreated, dto.ToReportResponse(report))
}

// listReports godoc
// @Summary List reports
// @Description Lists reports visible to the caller. Church-scoped callers see only their own church.
// @Tags reports
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListReportsResponse
// @Failure 401 {object} ErrorResponse
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListReportsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list reports")
		return
	}

	c.JSON(http.StatusOK, dto.ToListReportsResponse(reports))
}

// getReport godoc
// @Summary Get a report
// @Tags reports
// @Produce json
// @Param reportID path string true "Report ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportID} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), actor, c.Param("reportID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

// getReportTransactions godoc
// @Summary Get the ledger entries of a posted report
// @Description Lists the fund transactions the report's posting produced. Empty until posted.
// @Tags reports
// @Produce json
// @Param reportID path string true "Report ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reports/{reportID}/transactions [get]
func (h *reportHandler) getReportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.reportService.GetReportTransactions(c.Request.Context(), actor, c.Param("reportID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve report transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// approveReport godoc
// @Summary Approve a report
// @Description Approves a submitted report and posts its allocation to the fund ledger. If posting fails the report stays approved and an explicit post retry is safe.
// @Tags reports
// @Produce json
// @Param reportID path string true "Report ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Report is not in an approvable status"
// @Router /reports/{reportID}/approve [post]
func (h *reportHandler) approveReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reportID := c.Param("reportID")
	report, txns, err := h.reportService.ApproveReport(c.Request.Context(), actor, reportID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve report")
		return
	}

	logger.Info("Report approved and posted", slog.String("report_id", reportID))
	c.JSON(http.StatusOK, dto.PostingResponse{
		Report:       dto.ToReportResponse(report),
		Transactions: dto.ToTransactionResponses(txns),
	})
}

// rejectReport godoc
// @Summary Reject a report
// @Description Rejects a submitted report with a mandatory reason. The church may correct and resubmit.
// @Tags reports
// @Accept json
// @Produce json
// @Param reportID path string true "Report ID"
// @Param rejection body dto.RejectReportRequest true "Rejection reason"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Report is not in a rejectable status"
// @Router /reports/{reportID}/reject [post]
func (h *reportHandler) rejectReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RejectReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A rejection reason is required"})
		return
	}

	report, err := h.reportService.RejectReport(c.Request.Context(), actor, c.Param("reportID"), req.Reason)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

// postReport godoc
// @Summary Post an approved report
// @Description Explicitly posts an approved, not-yet-posted report to the fund ledger. The retry path after a failed approve-and-post.
// @Tags reports
// @Produce json
// @Param reportID path string true "Report ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Report is already posted"
// @Failure 422 {object} ErrorResponse "Report is not approved"
// @Router /reports/{reportID}/post [post]
func (h *reportHandler) postReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reportID := c.Param("reportID")
	report, txns, err := h.reportService.PostReport(c.Request.Context(), actor, reportID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to post report")
		return
	}

	logger.Info("Report posted", slog.String("report_id", reportID))
	c.JSON(http.StatusOK, dto.PostingResponse{
		Report:       dto.ToReportResponse(report),
		Transactions: dto.ToTransactionResponses(txns),
	})
}
