package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ExportService interface {
	// PayslipPDF renders a generated payslip as a PDF document.
	PayslipPDF(ctx context.Context, payslipID string) ([]byte, string, error)

	// WPSRegister builds the monthly salary-transfer workbook for bank
	// submission. Rows with incomplete WPS data are flagged, not dropped.
	WPSRegister(ctx context.Context, month, year int) ([]byte, string, error)
}

type exportServiceImpl struct {
	companyName  string
	payslipRepo  payroll.PayslipRepository
	employeeRepo employee.EmployeeRepository
}

func NewExportService(companyName string, payslipRepo payroll.PayslipRepository, employeeRepo employee.EmployeeRepository) ExportService {
	return &exportServiceImpl{
		companyName:  companyName,
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== PAYSLIP PDF ==========

func (s *exportServiceImpl) PayslipPDF(ctx context.Context, payslipID string) ([]byte, string, error) {
	record, err := s.payslipRepo.GetByID(ctx, payslipID)
	if err != nil {
		return nil, "", err
	}

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return nil, "", err
	}

	period := fmt.Sprintf("%s %d", time.Month(record.PeriodMonth).String(), record.PeriodYear)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.companyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Payslip - %s", period))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Employee: %s (%s)", emp.FullName, emp.EmployeeCode))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Department: %s / %s", emp.Department, emp.Designation))
	pdf.Ln(6)
	if emp.Bank.IBAN != "" {
		pdf.Cell(0, 6, fmt.Sprintf("IBAN: %s", emp.Bank.IBAN))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Earnings")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	s.amountRow(pdf, "Basic Salary", record.Salary.Basic)
	s.amountRow(pdf, "Housing Allowance", record.Salary.Housing)
	s.amountRow(pdf, "Transport Allowance", record.Salary.Transport)
	s.amountRow(pdf, "Other Allowances", record.Salary.Other)
	s.overtimeRow(pdf, "Overtime (normal)", record.Overtime.Normal)
	s.overtimeRow(pdf, "Overtime (night)", record.Overtime.Night)
	s.overtimeRow(pdf, "Overtime (holiday)", record.Overtime.Holiday)
	if !record.Totals.Bonus.IsZero() {
		s.amountRow(pdf, "Bonus", record.Totals.Bonus)
	}
	if !record.Totals.Arrears.IsZero() {
		s.amountRow(pdf, "Arrears", record.Totals.Arrears)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Deductions")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	if !record.Deductions.UnpaidLeaveDays.IsZero() {
		label := fmt.Sprintf("Unpaid Leave (%s days x %s/day)",
			record.Deductions.UnpaidLeaveDays.String(),
			record.Deductions.DailyRate.StringFixed(2))
		s.amountRow(pdf, label, record.Deductions.UnpaidLeaveAmount)
	}
	s.amountRow(pdf, "Loan Deduction", record.Deductions.Loan)
	s.amountRow(pdf, "Other Deduction", record.Deductions.Other)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Net Salary")
	pdf.CellFormat(50, 8, record.NetSalary.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Status: %s - generated by payroll, figures in AED", record.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render payslip PDF: %w", err)
	}

	filename := fmt.Sprintf("payslip-%s-%04d-%02d.pdf", emp.EmployeeCode, record.PeriodYear, record.PeriodMonth)
	return buf.Bytes(), filename, nil
}

func (s *exportServiceImpl) amountRow(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.Cell(120, 6, label)
	pdf.CellFormat(50, 6, amount.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(6)
}

func (s *exportServiceImpl) overtimeRow(pdf *gofpdf.Fpdf, label string, line payroll.OvertimeLine) {
	if line.Hours.IsZero() {
		return
	}
	full := fmt.Sprintf("%s: %s hrs x %s x %s",
		label, line.Hours.String(), line.HourlyRate.StringFixed(2), line.Multiplier.String())
	s.amountRow(pdf, full, line.Amount)
}

// ========== WPS REGISTER ==========

var wpsHeaders = []string{"Employee Code", "Employee Name", "WPS ID", "IBAN", "Bank", "Net Salary", "Status", "Notes"}

func (s *exportServiceImpl) WPSRegister(ctx context.Context, month, year int) ([]byte, string, error) {
	filter := payroll.PayslipFilter{
		PeriodMonth: &month,
		PeriodYear:  &year,
		Page:        1,
		Limit:       10000,
		SortBy:      "employee_code",
		SortOrder:   "asc",
	}
	records, _, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "WPS Register"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range wpsHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, record := range records {
		emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to resolve employee %s: %w", record.EmployeeID, err)
		}

		notes := ""
		if !emp.Bank.HasWPSData() {
			notes = "MISSING WPS DATA"
		}

		net, _ := record.NetSalary.Round(2).Float64()
		row := i + 2
		values := []interface{}{
			emp.EmployeeCode,
			emp.FullName,
			emp.Bank.WPSID,
			emp.Bank.IBAN,
			emp.Bank.BankName,
			net,
			string(record.Status),
			notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build WPS register: %w", err)
	}

	filename := fmt.Sprintf("wps-register-%04d-%02d.xlsx", year, month)
	return buf.Bytes(), filename, nil
}
