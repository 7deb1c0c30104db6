package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportStatus indicates where a monthly report sits in its approval lifecycle.
type ReportStatus string

const (
	ReportDraft         ReportStatus = "draft"
	ReportSubmitted     ReportStatus = "submitted"
	ReportPendingReview ReportStatus = "pending_review"
	ReportApproved      ReportStatus = "approved"
	ReportRejected      ReportStatus = "rejected"
	ReportPosted        ReportStatus = "posted"
)

// ParseReportStatus converts a raw string into a ReportStatus, rejecting
// anything outside the closed set. Unknown values are construction-time
// errors, never runtime surprises.
func ParseReportStatus(s string) (ReportStatus, error) {
	switch ReportStatus(s) {
	case ReportDraft, ReportSubmitted, ReportPendingReview, ReportApproved, ReportRejected, ReportPosted:
		return ReportStatus(s), nil
	}
	return "", fmt.Errorf("unknown report status %q", s)
}

// reportTransitions is the closed transition table for the report lifecycle.
// posted is terminal; rejected may only go back to submitted (resubmission).
var reportTransitions = map[ReportStatus][]ReportStatus{
	ReportDraft:         {ReportSubmitted},
	ReportSubmitted:     {ReportPendingReview, ReportApproved, ReportRejected},
	ReportPendingReview: {ReportApproved, ReportRejected},
	ReportApproved:      {ReportPosted},
	ReportRejected:      {ReportSubmitted},
	ReportPosted:        {},
}

// CanTransition reports whether the transition table allows moving from one
// status to another.
func CanTransition(from, to ReportStatus) bool {
	for _, next := range reportTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CategoryAmounts holds the raw per-category income and expense figures of a
// monthly report, in whole base-currency units (Guaraní).
type CategoryAmounts struct {
	Tithes          decimal.Decimal `json:"tithes"`
	Offerings       decimal.Decimal `json:"offerings"`
	OtherIncome     decimal.Decimal `json:"otherIncome"`
	Missions        decimal.Decimal `json:"missions"`         // 100% to the Misiones fund
	SpecialOffering decimal.Decimal `json:"specialOffering"`  // 100% to the Ofrendas Especiales fund
	Salaries        decimal.Decimal `json:"salaries"`
	Rent            decimal.Decimal `json:"rent"`
	Utilities       decimal.Decimal `json:"utilities"`
	OtherExpenses   decimal.Decimal `json:"otherExpenses"`
}

// ReportTotals holds the figures derived from CategoryAmounts by the
// allocation calculation. Stored alongside the report for auditability, but
// always recomputable from the raw amounts.
type ReportTotals struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	NationalFundDue decimal.Decimal `json:"nationalFundDue"`
	DesignatedTotal decimal.Decimal `json:"designatedTotal"`
	OperatingTotal  decimal.Decimal `json:"operatingTotal"`
	ClosingBalance  decimal.Decimal `json:"closingBalance"`
}

// Report is the monthly income/expense report of one church for one period.
// At most one non-rejected report exists per (church, month, year); a
// rejected report is edited and resubmitted in place with a bumped revision.
// Once posted the report is immutable.
type Report struct {
	ReportID string `json:"reportID"` // Primary Key (UUID)
	ChurchID string `json:"churchID"` // FK -> churches.church_id
	Month    int    `json:"month"`    // 1..12
	Year     int    `json:"year"`

	Amounts CategoryAmounts `json:"amounts"`
	Totals  ReportTotals    `json:"totals"`

	Status   ReportStatus `json:"status"`
	Revision int          `json:"revision"` // incremented on resubmission after rejection

	// Submission metadata from the bank deposit slip.
	BankReceiptNo string     `json:"bankReceiptNo"`
	DepositDate   *time.Time `json:"depositDate,omitempty"`
	SubmittedAt   *time.Time `json:"submittedAt,omitempty"`
	SubmittedBy   string     `json:"submittedBy"`

	// Rejection metadata. Reason is required when status is rejected.
	RejectionReason string `json:"rejectionReason,omitempty"`

	// Posting flags. Set exactly once, by the ledger poster.
	Posted   bool       `json:"posted"`
	PostedAt *time.Time `json:"postedAt,omitempty"`
	PostedBy string     `json:"postedBy,omitempty"`

	AuditFields
}

// Period renders the report period as "month/year" for concepts and logs.
func (r *Report) Period() string {
	return fmt.Sprintf("%d/%d", r.Month, r.Year)
}
