package payroll

import (
	"context"
	"time"
)

type PayrollService interface {
	Generate(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)
	BulkGenerate(ctx context.Context, req BulkGeneratePayslipRequest) (int, error)
	Get(ctx context.Context, id string) (PayslipResponse, error)
	List(ctx context.Context, filter PayslipFilter) (ListPayslipResponse, error)
	Summary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
	Approve(ctx context.Context, id string) (PayslipResponse, error)
	ApproveAll(ctx context.Context, req ApproveAllRequest) (int64, error)
	MarkPaid(ctx context.Context, id string) (PayslipResponse, error)
	Delete(ctx context.Context, id string) error
	Gratuity(ctx context.Context, employeeID string, asOf time.Time) (GratuityResponse, error)
	GratuityReport(ctx context.Context, asOf time.Time) (GratuityReportResponse, error)
}
