package payroll

import "context"

// PayslipRepository defines data access for payroll records. Exactly one
// record exists per (employee, period_month, period_year); UpsertDraft
// replaces the draft for that key atomically and refuses to touch records
// that have moved past draft.
type PayslipRepository interface {
	UpsertDraft(ctx context.Context, record PayslipRecord) (PayslipRecord, error)
	GetByID(ctx context.Context, id string) (PayslipRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayslipRecord, error)
	List(ctx context.Context, filter PayslipFilter) ([]PayslipRecord, int64, error)

	// Status transitions; both are conditional updates that fail with
	// ErrInvalidTransition when the record is not in the expected state.
	Approve(ctx context.Context, id, approverID string) (PayslipRecord, error)
	ApproveAllForPeriod(ctx context.Context, month, year int, approverID string) (int64, error)
	MarkPaid(ctx context.Context, id, payerID string) (PayslipRecord, error)

	Delete(ctx context.Context, id string) error
	DeleteDraftsForPeriod(ctx context.Context, month, year int) (int64, error)

	Summary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
