package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
	"github.com/atlashr/hrms-backend-go/internal/pkg/database"
	"github.com/atlashr/hrms-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payslipRepo  payroll.PayslipRepository
	employeeRepo employee.EmployeeRepository
	calc         *Calculator

	// runInTx wraps multi-statement repository work in one transaction.
	runInTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	payslipRepo payroll.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	calc *Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
		calc:         calc,
		runInTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Helper to get the acting employee's identity from the JWT context
func claimsFromContext(ctx context.Context) (employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	actorID, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if !emp.IsActive {
		return payroll.PayslipResponse{}, employee.ErrEmployeeInactive
	}

	record, err := s.calc.BuildPayslip(emp.Salary, req.Adjustment())
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	record.ID = uuid.NewString()
	record.EmployeeID = emp.ID
	record.PeriodMonth = req.PeriodMonth
	record.PeriodYear = req.PeriodYear
	record.GeneratedBy = &actorID

	saved, err := s.payslipRepo.UpsertDraft(ctx, record)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(saved), nil
}

func (s *PayrollServiceImpl) BulkGenerate(ctx context.Context, req payroll.BulkGeneratePayslipRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	actorID, err := claimsFromContext(ctx)
	if err != nil {
		return 0, err
	}

	department := req.Department
	if department == "All" {
		department = ""
	}

	employees, err := s.employeeRepo.GetActiveByDepartment(ctx, department)
	if err != nil {
		return 0, fmt.Errorf("failed to get employees: %w", err)
	}
	if len(employees) == 0 {
		return 0, nil
	}

	created := 0
	err = s.runInTx(ctx, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		// Clear existing drafts for the period so the run starts from a
		// clean slate; approved and paid records are left untouched.
		if _, err := s.payslipRepo.DeleteDraftsForPeriod(txCtx, req.PeriodMonth, req.PeriodYear); err != nil {
			return fmt.Errorf("failed to clear draft payslips: %w", err)
		}

		for _, emp := range employees {
			record, err := s.calc.BuildPayslip(emp.Salary, payroll.PeriodAdjustment{})
			if err != nil {
				return fmt.Errorf("failed to build payslip for employee %s: %w", emp.ID, err)
			}

			record.ID = uuid.NewString()
			record.EmployeeID = emp.ID
			record.PeriodMonth = req.PeriodMonth
			record.PeriodYear = req.PeriodYear
			record.GeneratedBy = &actorID

			if _, err := s.payslipRepo.UpsertDraft(txCtx, record); err != nil {
				if errors.Is(err, payroll.ErrPayslipNotEditable) {
					continue // already approved or paid for this period
				}
				return fmt.Errorf("failed to save payslip for employee %s: %w", emp.ID, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

// ========== QUERIES ==========

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	record, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return mapToPayslipResponse(record), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayslipFilter) (payroll.ListPayslipResponse, error) {
	records, totalCount, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayslipResponse{}, err
	}

	return payroll.ListPayslipResponse{
		Data:       mapToPayslipResponses(records),
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) Summary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	return s.payslipRepo.Summary(ctx, month, year)
}

// ========== STATUS TRANSITIONS ==========

func (s *PayrollServiceImpl) Approve(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	actorID, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	record, err := s.payslipRepo.Approve(ctx, id, actorID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return mapToPayslipResponse(record), nil
}

func (s *PayrollServiceImpl) ApproveAll(ctx context.Context, req payroll.ApproveAllRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	actorID, err := claimsFromContext(ctx)
	if err != nil {
		return 0, err
	}

	return s.payslipRepo.ApproveAllForPeriod(ctx, req.PeriodMonth, req.PeriodYear, actorID)
}

func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	actorID, err := claimsFromContext(ctx)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	record, err := s.payslipRepo.MarkPaid(ctx, id, actorID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return mapToPayslipResponse(record), nil
}

func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	return s.payslipRepo.Delete(ctx, id)
}

// ========== GRATUITY ==========

func (s *PayrollServiceImpl) Gratuity(ctx context.Context, employeeID string, asOf time.Time) (payroll.GratuityResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.GratuityResponse{}, err
	}

	result, err := s.calc.Gratuity(emp.Salary, emp.JoiningDate, asOf)
	if err != nil {
		return payroll.GratuityResponse{}, err
	}

	return mapToGratuityResponse(emp, result, asOf), nil
}

func (s *PayrollServiceImpl) GratuityReport(ctx context.Context, asOf time.Time) (payroll.GratuityReportResponse, error) {
	employees, err := s.employeeRepo.GetActiveByDepartment(ctx, "")
	if err != nil {
		return payroll.GratuityReportResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	report := payroll.GratuityReportResponse{
		AsOfDate:       asOf.Format("2006-01-02"),
		TotalLiability: decimal.Zero,
	}
	for _, emp := range employees {
		result, err := s.calc.Gratuity(emp.Salary, emp.JoiningDate, asOf)
		if err != nil {
			return payroll.GratuityReportResponse{}, fmt.Errorf("failed to compute gratuity for employee %s: %w", emp.ID, err)
		}
		report.Entries = append(report.Entries, mapToGratuityResponse(emp, result, asOf))
		report.TotalLiability = report.TotalLiability.Add(result.Amount)
	}

	return report, nil
}

// ========== HELPERS ==========

func mapToPayslipResponse(r payroll.PayslipRecord) payroll.PayslipResponse {
	var approvedAtStr, paidAtStr *string
	if r.ApprovedAt != nil {
		str := r.ApprovedAt.Format(time.RFC3339)
		approvedAtStr = &str
	}
	if r.PaidAt != nil {
		str := r.PaidAt.Format(time.RFC3339)
		paidAtStr = &str
	}

	employeeName := ""
	employeeCode := ""
	department := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		employeeCode = *r.EmployeeCode
	}
	if r.Department != nil {
		department = *r.Department
	}

	return payroll.PayslipResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		EmployeeCode: employeeCode,
		Department:   department,
		PeriodMonth:  r.PeriodMonth,
		PeriodYear:   r.PeriodYear,
		Salary: payroll.SalaryComponentsResponse{
			Basic:      r.Salary.Basic,
			Housing:    r.Salary.Housing,
			Transport:  r.Salary.Transport,
			Other:      r.Salary.Other,
			FixedGross: r.Salary.FixedGross(),
		},
		Overtime: payroll.OvertimeBreakdownResponse{
			Normal:  mapToOvertimeLineResponse(r.Overtime.Normal),
			Night:   mapToOvertimeLineResponse(r.Overtime.Night),
			Holiday: mapToOvertimeLineResponse(r.Overtime.Holiday),
			Total:   r.Overtime.Total,
		},
		Deductions: payroll.DeductionBreakdownResponse{
			UnpaidLeaveDays:   r.Deductions.UnpaidLeaveDays,
			DailyRate:         r.Deductions.DailyRate,
			UnpaidLeaveAmount: r.Deductions.UnpaidLeaveAmount,
			Loan:              r.Deductions.Loan,
			Other:             r.Deductions.Other,
			Total:             r.Deductions.Total,
		},
		Totals: payroll.TotalsResponse{
			Overtime:   r.Totals.Overtime,
			Bonus:      r.Totals.Bonus,
			Arrears:    r.Totals.Arrears,
			Deductions: r.Totals.Deductions,
			Gross:      r.Totals.Gross,
		},
		NetSalary:   r.NetSalary,
		Status:      string(r.Status),
		GeneratedBy: r.GeneratedBy,
		ApprovedBy:  r.ApprovedBy,
		ApprovedAt:  approvedAtStr,
		PaidBy:      r.PaidBy,
		PaidAt:      paidAtStr,
	}
}

func mapToOvertimeLineResponse(l payroll.OvertimeLine) payroll.OvertimeLineResponse {
	return payroll.OvertimeLineResponse{
		Hours:      l.Hours,
		HourlyRate: l.HourlyRate,
		Multiplier: l.Multiplier,
		Amount:     l.Amount,
	}
}

func mapToPayslipResponses(records []payroll.PayslipRecord) []payroll.PayslipResponse {
	result := make([]payroll.PayslipResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToPayslipResponse(r))
	}
	return result
}

func mapToGratuityResponse(emp employee.Employee, result payroll.GratuityResult, asOf time.Time) payroll.GratuityResponse {
	return payroll.GratuityResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		EmployeeCode: emp.EmployeeCode,
		AsOfDate:     asOf.Format("2006-01-02"),
		Eligible:     result.Eligible,
		TenureYears:  result.TenureYears,
		Amount:       result.Amount,
		Cap:          result.Cap,
	}
}
