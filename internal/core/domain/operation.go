package domain

// Operation names a gated action in the core's operation surface. The
// authorization gate maps each operation to a minimum role and a scope rule.
type Operation string

const (
	OpSubmitReport       Operation = "report:submit"
	OpViewReport         Operation = "report:view"
	OpApproveReport      Operation = "report:approve"
	OpRejectReport       Operation = "report:reject"
	OpPostReport         Operation = "report:post"
	OpViewFundBalance    Operation = "fund:view_balance"
	OpRecordFundEvent    Operation = "fund:record_event"
	OpViewReconciliation Operation = "reconciliation:view"
)

// OperationScope is the target an operation acts on; empty fields mean the
// operation has no target of that kind.
type OperationScope struct {
	ChurchID string
	FundID   string
}
