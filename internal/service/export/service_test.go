package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubPayslipRepo struct {
	records []payroll.PayslipRecord
}

func (s *stubPayslipRepo) UpsertDraft(ctx context.Context, record payroll.PayslipRecord) (payroll.PayslipRecord, error) {
	return record, nil
}

func (s *stubPayslipRepo) GetByID(ctx context.Context, id string) (payroll.PayslipRecord, error) {
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return payroll.PayslipRecord{}, payroll.ErrPayslipNotFound
}

func (s *stubPayslipRepo) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayslipRecord, error) {
	return payroll.PayslipRecord{}, payroll.ErrPayslipNotFound
}

func (s *stubPayslipRepo) List(ctx context.Context, filter payroll.PayslipFilter) ([]payroll.PayslipRecord, int64, error) {
	return s.records, int64(len(s.records)), nil
}

func (s *stubPayslipRepo) Approve(ctx context.Context, id, approverID string) (payroll.PayslipRecord, error) {
	return payroll.PayslipRecord{}, payroll.ErrPayslipNotFound
}

func (s *stubPayslipRepo) ApproveAllForPeriod(ctx context.Context, month, year int, approverID string) (int64, error) {
	return 0, nil
}

func (s *stubPayslipRepo) MarkPaid(ctx context.Context, id, payerID string) (payroll.PayslipRecord, error) {
	return payroll.PayslipRecord{}, payroll.ErrPayslipNotFound
}

func (s *stubPayslipRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubPayslipRepo) DeleteDraftsForPeriod(ctx context.Context, month, year int) (int64, error) {
	return 0, nil
}

func (s *stubPayslipRepo) Summary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	return payroll.PayrollSummaryResponse{}, nil
}

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *stubEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (s *stubEmployeeRepo) GetActiveByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) UpdateCompensation(ctx context.Context, id string, req employee.UpdateCompensationRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) Deactivate(ctx context.Context, id string) error { return nil }

func exportTestFixtures() (*stubPayslipRepo, *stubEmployeeRepo) {
	dec := decimal.RequireFromString

	emp := employee.Employee{
		ID:           "emp-1",
		EmployeeCode: "ENG-0001",
		FullName:     "Amira Khalid",
		Department:   "Engineering",
		Designation:  "Engineer",
		JoiningDate:  time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC),
		Bank: employee.BankDetails{
			BankName: "Emirates NBD",
			IBAN:     "AE070331234567890123456",
			WPSID:    "12345678901234",
		},
		IsActive: true,
	}
	noWPS := employee.Employee{
		ID:           "emp-2",
		EmployeeCode: "ENG-0002",
		FullName:     "Omar Said",
		Department:   "Engineering",
		Designation:  "Engineer",
		IsActive:     true,
	}

	record := payroll.PayslipRecord{
		ID:          "ps-1",
		EmployeeID:  "emp-1",
		PeriodMonth: 6,
		PeriodYear:  2025,
		Salary: payroll.SalaryComponents{
			Basic:     dec("6000"),
			Housing:   dec("2500"),
			Transport: dec("1000"),
			Other:     dec("500"),
		},
		Overtime: payroll.OvertimeBreakdown{
			Normal: payroll.OvertimeLine{
				Hours:      dec("10"),
				HourlyRate: dec("25"),
				Multiplier: dec("1.25"),
				Amount:     dec("312.50"),
			},
			Total: dec("312.50"),
		},
		Deductions: payroll.DeductionBreakdown{
			UnpaidLeaveDays:   dec("2"),
			DailyRate:         dec("333.33"),
			UnpaidLeaveAmount: dec("666.67"),
			Loan:              dec("400"),
			Total:             dec("1066.67"),
		},
		Totals: payroll.Totals{
			Overtime:   dec("312.50"),
			Deductions: dec("1066.67"),
			Gross:      dec("10000"),
		},
		NetSalary: dec("9245.83"),
		Status:    payroll.StatusDraft,
	}
	recordNoWPS := payroll.PayslipRecord{
		ID:          "ps-2",
		EmployeeID:  "emp-2",
		PeriodMonth: 6,
		PeriodYear:  2025,
		NetSalary:   dec("8000"),
		Status:      payroll.StatusApproved,
	}

	payslipRepo := &stubPayslipRepo{records: []payroll.PayslipRecord{record, recordNoWPS}}
	employeeRepo := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": emp,
		"emp-2": noWPS,
	}}
	return payslipRepo, employeeRepo
}

func TestExportService_PayslipPDF(t *testing.T) {
	t.Parallel()

	payslipRepo, employeeRepo := exportTestFixtures()
	svc := NewExportService("Atlas HR", payslipRepo, employeeRepo)

	data, filename, err := svc.PayslipPDF(context.Background(), "ps-1")
	require.NoError(t, err)

	assert.Equal(t, "payslip-ENG-0001-2025-06.pdf", filename)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportService_PayslipPDF_NotFound(t *testing.T) {
	t.Parallel()

	payslipRepo, employeeRepo := exportTestFixtures()
	svc := NewExportService("Atlas HR", payslipRepo, employeeRepo)

	_, _, err := svc.PayslipPDF(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}

func TestExportService_WPSRegister(t *testing.T) {
	t.Parallel()

	payslipRepo, employeeRepo := exportTestFixtures()
	svc := NewExportService("Atlas HR", payslipRepo, employeeRepo)

	data, filename, err := svc.WPSRegister(context.Background(), 6, 2025)
	require.NoError(t, err)
	assert.Equal(t, "wps-register-2025-06.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("WPS Register")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Employee Code", rows[0][0])
	assert.Equal(t, "ENG-0001", rows[1][0])
	assert.Equal(t, "12345678901234", rows[1][2])

	// Incomplete bank data is flagged, not dropped
	assert.Equal(t, "ENG-0002", rows[2][0])
	assert.Equal(t, "MISSING WPS DATA", rows[2][7])
}
