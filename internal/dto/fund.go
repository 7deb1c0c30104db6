package dto

import (
	"time"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	FundID        string          `json:"fundID"`
	ChurchID      *string         `json:"churchID,omitempty"`
	ReportID      *string         `json:"reportID,omitempty"`
	AmountIn      decimal.Decimal `json:"amountIn"`
	AmountOut     decimal.Decimal `json:"amountOut"`
	Concept       string          `json:"concept"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		FundID:        t.FundID,
		ChurchID:      t.ChurchID,
		ReportID:      t.ReportID,
		AmountIn:      t.AmountIn,
		AmountOut:     t.AmountOut,
		Concept:       t.Concept,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// FundResponse defines the data returned for a fund.
type FundResponse struct {
	FundID      string          `json:"fundID"`
	Name        string          `json:"name"`
	Type        domain.FundType `json:"type"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"isActive"`
}

// ToFundResponse converts a domain.Fund to its response DTO.
func ToFundResponse(f *domain.Fund) FundResponse {
	return FundResponse{
		FundID:      f.FundID,
		Name:        f.Name,
		Type:        f.Type,
		Description: f.Description,
		IsActive:    f.IsActive,
	}
}

// FundBalanceResponse defines the data returned for a balance query. The
// calculated figure is authoritative; the stored one is the external cache,
// returned only for comparison.
type FundBalanceResponse struct {
	FundID            string          `json:"fundID"`
	FundName          string          `json:"fundName"`
	CalculatedBalance decimal.Decimal `json:"calculatedBalance"`
	StoredBalance     decimal.Decimal `json:"storedBalance"`
	From              *time.Time      `json:"from,omitempty"`
	To                *time.Time      `json:"to,omitempty"`
}

// BalanceWindowParams defines the optional date window of a balance query.
type BalanceWindowParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// RecordFundEventRequest defines a manual fund ledger entry. Exactly one of
// amountIn/amountOut must be positive; the service enforces it.
type RecordFundEventRequest struct {
	AmountIn  decimal.Decimal `json:"amountIn"`
	AmountOut decimal.Decimal `json:"amountOut"`
	Concept   string          `json:"concept" binding:"required"`
	ChurchID  *string         `json:"churchID"`
}

// ReconciliationResponse wraps a reconciliation run: every active fund, plus
// the filtered discrepancy list.
type ReconciliationResponse struct {
	Funds         []domain.ReconciliationRow `json:"funds"`
	Discrepancies []domain.ReconciliationRow `json:"discrepancies"`
}
