package dto

import (
	"time"

	"github.com/anthonybir/ipupy-tesoreria-sub014/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryAmountsRequest carries the raw category figures of a submission.
// Amounts are whole base-currency units; range checks beyond non-negativity
// happen in the allocation calculator.
type CategoryAmountsRequest struct {
	Tithes          decimal.Decimal `json:"tithes"`
	Offerings       decimal.Decimal `json:"offerings"`
	OtherIncome     decimal.Decimal `json:"otherIncome"`
	Missions        decimal.Decimal `json:"missions"`
	SpecialOffering decimal.Decimal `json:"specialOffering"`
	Salaries        decimal.Decimal `json:"salaries"`
	Rent            decimal.Decimal `json:"rent"`
	Utilities       decimal.Decimal `json:"utilities"`
	OtherExpenses   decimal.Decimal `json:"otherExpenses"`
}

// ToDomain converts the request amounts to the domain value.
func (r CategoryAmountsRequest) ToDomain() domain.CategoryAmounts {
	return domain.CategoryAmounts{
		Tithes:          r.Tithes,
		Offerings:       r.Offerings,
		OtherIncome:     r.OtherIncome,
		Missions:        r.Missions,
		SpecialOffering: r.SpecialOffering,
		Salaries:        r.Salaries,
		Rent:            r.Rent,
		Utilities:       r.Utilities,
		OtherExpenses:   r.OtherExpenses,
	}
}

// SubmitReportRequest defines the data needed to submit a monthly report.
// This is the single validated input value constructed at the boundary; a
// request that fails binding never reaches the state machine.
type SubmitReportRequest struct {
	ChurchID      string                 `json:"churchID" binding:"required,uuid"`
	Month         int                    `json:"month" binding:"required,min=1,max=12"`
	Year          int                    `json:"year" binding:"required,min=2000,max=2100"`
	Amounts       CategoryAmountsRequest `json:"amounts" binding:"required"`
	BankReceiptNo string                 `json:"bankReceiptNo"`
	DepositDate   *time.Time             `json:"depositDate"`
}

// RejectReportRequest carries the mandatory rejection reason.
type RejectReportRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListReportsParams defines query parameters for listing reports.
type ListReportsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ReportResponse defines the data returned for a report.
type ReportResponse struct {
	ReportID        string                 `json:"reportID"`
	ChurchID        string                 `json:"churchID"`
	Month           int                    `json:"month"`
	Year            int                    `json:"year"`
	Amounts         domain.CategoryAmounts `json:"amounts"`
	Totals          domain.ReportTotals    `json:"totals"`
	Status          domain.ReportStatus    `json:"status"`
	Revision        int                    `json:"revision"`
	BankReceiptNo   string                 `json:"bankReceiptNo,omitempty"`
	DepositDate     *time.Time             `json:"depositDate,omitempty"`
	RejectionReason string                 `json:"rejectionReason,omitempty"`
	Posted          bool                   `json:"posted"`
	PostedAt        *time.Time             `json:"postedAt,omitempty"`
	SubmittedAt     *time.Time             `json:"submittedAt,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToReportResponse converts a domain.Report to its response DTO.
func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		ReportID:        r.ReportID,
		ChurchID:        r.ChurchID,
		Month:           r.Month,
		Year:            r.Year,
		Amounts:         r.Amounts,
		Totals:          r.Totals,
		Status:          r.Status,
		Revision:        r.Revision,
		BankReceiptNo:   r.BankReceiptNo,
		DepositDate:     r.DepositDate,
		RejectionReason: r.RejectionReason,
		Posted:          r.Posted,
		PostedAt:        r.PostedAt,
		SubmittedAt:     r.SubmittedAt,
		CreatedAt:       r.CreatedAt,
	}
}

// ListReportsResponse wraps the list of reports.
type ListReportsResponse struct {
	Reports []ReportResponse `json:"reports"`
}

// ToListReportsResponse converts a slice of domain.Report to the list DTO.
func ToListReportsResponse(reports []domain.Report) ListReportsResponse {
	res := make([]ReportResponse, len(reports))
	for i := range reports {
		res[i] = ToReportResponse(&reports[i])
	}
	return ListReportsResponse{Reports: res}
}

// PostingResponse defines the data returned after a report is posted.
type PostingResponse struct {
	Report       ReportResponse        `json:"report"`
	Transactions []TransactionResponse `json:"transactions"`
}
