package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one immutable ledger entry against a single fund. Exactly
// one of AmountIn/AmountOut is non-zero, both are non-negative whole
// base-currency units. Corrections are reversing entries, never edits.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	FundID        string          `json:"fundID"`        // FK -> funds.fund_id (Not Null)
	ChurchID      *string         `json:"churchID,omitempty"`
	ReportID      *string         `json:"reportID,omitempty"`
	BatchID       *string         `json:"batchID,omitempty"` // set when created by a posting batch
	AmountIn      decimal.Decimal `json:"amountIn"`          // credit
	AmountOut     decimal.Decimal `json:"amountOut"`         // debit
	Concept       string          `json:"concept"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// SignedAmount is the transaction's contribution to its fund balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	return t.AmountIn.Sub(t.AmountOut)
}

// PostingBatch groups the transactions produced from one report approval.
// All-or-nothing existence; at most one batch per report, enforced by a
// uniqueness constraint on ReportID among committed batches.
type PostingBatch struct {
	BatchID   string    `json:"batchID"`  // Primary Key (UUID)
	ReportID  string    `json:"reportID"` // unique among committed batches
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
