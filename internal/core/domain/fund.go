package domain

import "github.com/shopspring/decimal"

// FundType tags what kind of money pool a fund is.
type FundType string

const (
	FundNational   FundType = "national"   // central pool fed by the 10% share
	FundDesignated FundType = "designated" // special-purpose, 100% pass-through
	FundLocal      FundType = "local"      // church-retained money
)

// Fund is a named money pool. Its true balance is always the signed sum of
// its transactions; BalanceCache is a denormalized copy maintained outside
// this core and used only for reconciliation diagnostics.
type Fund struct {
	FundID       string          `json:"fundID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	Type         FundType        `json:"type"`
	Description  string          `json:"description"`
	BalanceCache decimal.Decimal `json:"balanceCache"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// FundBalance is the result of a balance computation for one fund: the
// balance derived from the transaction log next to the stored cache.
type FundBalance struct {
	FundID            string          `json:"fundID"`
	FundName          string          `json:"fundName"`
	CalculatedBalance decimal.Decimal `json:"calculatedBalance"`
	StoredBalance     decimal.Decimal `json:"storedBalance"`
}

// ReconciliationStatus classifies one fund in a reconciliation run.
type ReconciliationStatus string

const (
	ReconciliationBalanced    ReconciliationStatus = "balanced"
	ReconciliationDiscrepancy ReconciliationStatus = "discrepancy"
)

// ReconciliationRow compares a fund's stored balance against the balance
// calculated from its transactions. Difference = stored - calculated.
type ReconciliationRow struct {
	FundID            string               `json:"fundID"`
	FundName          string               `json:"fundName"`
	FundType          FundType             `json:"fundType"`
	StoredBalance     decimal.Decimal      `json:"storedBalance"`
	CalculatedBalance decimal.Decimal      `json:"calculatedBalance"`
	Difference        decimal.Decimal      `json:"difference"`
	Status            ReconciliationStatus `json:"status"`
}
