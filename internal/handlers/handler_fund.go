package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/ports/services"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/dto"
	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/middleware"
)

// fundHandler handles HTTP requests for funds, balances and reconciliation.
type fundHandler struct {
	fundService portssvc.FundSvcFacade
}

func newFundHandler(fundService portssvc.FundSvcFacade) *fundHandler {
	return &fundHandler{fundService: fundService}
}

// RegisterFundRoutes registers fund and reconciliation routes.
func RegisterFundRoutes(group *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)

	funds := group.Group("/funds")
	{
		funds.GET("", h.listFunds)
		funds.GET("/:fundID/balance", h.getFundBalance)
		funds.GET("/:fundID/transactions", h.listFundTransactions)
		funds.POST("/:fundID/transactions", h.recordFundEvent)
	}
	group.GET("/reconciliation", h.reconcile)
}

// listFunds godoc
// @Summary List active funds
// @Description Lists the active funds visible to the caller.
// @Tags funds
// @Produce json
// @Success 200 {array} dto.FundResponse
// @Failure 401 {object} ErrorResponse
// @Router /funds [get]
func (h *fundHandler) listFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	funds, err := h.fundService.ListFunds(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list funds")
		return
	}

	res := make([]dto.FundResponse, len(funds))
	for i := range funds {
		res[i] = dto.ToFundResponse(&funds[i])
	}
	c.JSON(http.StatusOK, res)
}

// getFundBalance godoc
// @Summary Get a fund balance
// @Description Computes the fund's balance from its transaction log over an optional date window, next to the stored cache value.
// @Tags funds
// @Produce json
// @Param fundID path string true "Fund ID"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.FundBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /funds/{fundID}/balance [get]
func (h *fundHandler) getFundBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var window dto.BalanceWindowParams
	if err := c.ShouldBindQuery(&window); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date window"})
		return
	}

	fundID := c.Param("fundID")
	balance, err := h.fundService.GetFundBalance(c.Request.Context(), actor, fundID, window.From, window.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute fund balance")
		return
	}

	c.JSON(http.StatusOK, dto.FundBalanceResponse{
		FundID:            balance.FundID,
		FundName:          balance.FundName,
		CalculatedBalance: balance.CalculatedBalance,
		StoredBalance:     balance.StoredBalance,
		From:              window.From,
		To:                window.To,
	})
}

// listFundTransactions godoc
// @Summary List a fund's transactions
// @Description Lists the fund's ledger entries over an optional date window, newest first.
// @Tags funds
// @Produce json
// @Param fundID path string true "Fund ID"
// @Param from query string false "Window start (YYYY-MM-DD)"
// @Param to query string false "Window end (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /funds/{fundID}/transactions [get]
func (h *fundHandler) listFundTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var window dto.BalanceWindowParams
	if err := c.ShouldBindQuery(&window); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date window"})
		return
	}
	var paging dto.ListReportsParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	txns, err := h.fundService.ListFundTransactions(c.Request.Context(), actor, c.Param("fundID"), window.From, window.To, paging.Limit, paging.Offset)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fund transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}

// recordFundEvent godoc
// @Summary Record a manual fund event
// @Description Appends a manual ledger entry to a fund. Exactly one of amountIn/amountOut must be positive; corrections are reversing entries.
// @Tags funds
// @Accept json
// @Produce json
// @Param fundID path string true "Fund ID"
// @Param event body dto.RecordFundEventRequest true "Fund event"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /funds/{fundID}/transactions [post]
func (h *fundHandler) recordFundEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordFundEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordFundEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	txn, err := h.fundService.RecordFundEvent(c.Request.Context(), actor, c.Param("fundID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record fund event")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// reconcile godoc
// @Summary Reconcile fund balances
// @Description Compares the stored balance of every active fund against the balance calculated from its transactions. Read-only.
// @Tags reconciliation
// @Produce json
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 403 {object} ErrorResponse
// @Router /reconciliation [get]
func (h *fundHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	result, err := h.fundService.Reconcile(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reconcile funds")
		return
	}

	c.JSON(http.StatusOK, result)
}
