package payroll

import (
	"time"

	"github.com/atlashr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SalaryComponents is an employee's fixed monthly pay structure. FixedGross
// is always derived from the four components, never stored on its own.
type SalaryComponents struct {
	Basic     decimal.Decimal
	Housing   decimal.Decimal
	Transport decimal.Decimal
	Other     decimal.Decimal
}

func (s SalaryComponents) FixedGross() decimal.Decimal {
	return s.Basic.Add(s.Housing).Add(s.Transport).Add(s.Other)
}

func (s SalaryComponents) Validate() error {
	var errs validator.ValidationErrors

	components := []struct {
		field string
		value decimal.Decimal
	}{
		{"basic", s.Basic},
		{"housing", s.Housing},
		{"transport", s.Transport},
		{"other", s.Other},
	}
	for _, c := range components {
		if c.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: c.field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OvertimeHours holds the per-category hour counts entered for a pay period.
type OvertimeHours struct {
	Normal  decimal.Decimal
	Night   decimal.Decimal
	Holiday decimal.Decimal
}

func (h OvertimeHours) Validate() error {
	var errs validator.ValidationErrors

	categories := []struct {
		field string
		value decimal.Decimal
	}{
		{"overtime_normal_hours", h.Normal},
		{"overtime_night_hours", h.Night},
		{"overtime_holiday_hours", h.Holiday},
	}
	for _, c := range categories {
		if c.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: c.field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodAdjustment is the manual per-period input for one employee: overtime
// hours, one-off earnings and flat deductions. One adjustment exists per
// (employee, month, year); re-submission replaces the prior draft.
type PeriodAdjustment struct {
	Overtime        OvertimeHours
	Bonus           decimal.Decimal
	Arrears         decimal.Decimal
	UnpaidLeaveDays decimal.Decimal
	LoanDeduction   decimal.Decimal
	OtherDeduction  decimal.Decimal
}

func (a PeriodAdjustment) Validate() error {
	var errs validator.ValidationErrors

	if err := a.Overtime.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"bonus", a.Bonus},
		{"arrears", a.Arrears},
		{"unpaid_leave_days", a.UnpaidLeaveDays},
		{"loan_deduction", a.LoanDeduction},
		{"other_deduction", a.OtherDeduction},
	}
	for _, m := range amounts {
		if m.value.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: m.field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OvertimeLine is one itemized overtime category on a payslip.
type OvertimeLine struct {
	Hours      decimal.Decimal
	HourlyRate decimal.Decimal
	Multiplier decimal.Decimal
	Amount     decimal.Decimal
}

type OvertimeBreakdown struct {
	Normal  OvertimeLine
	Night   OvertimeLine
	Holiday OvertimeLine
	Total   decimal.Decimal
}

type DeductionBreakdown struct {
	UnpaidLeaveDays   decimal.Decimal
	DailyRate         decimal.Decimal
	UnpaidLeaveAmount decimal.Decimal
	Loan              decimal.Decimal
	Other             decimal.Decimal
	Total             decimal.Decimal
}

type Totals struct {
	Overtime   decimal.Decimal
	Bonus      decimal.Decimal
	Arrears    decimal.Decimal
	Deductions decimal.Decimal
	Gross      decimal.Decimal
}

// PayslipStatus enum. Transitions are forward-only: draft -> approved -> paid.
type PayslipStatus string

const (
	StatusDraft    PayslipStatus = "draft"
	StatusApproved PayslipStatus = "approved"
	StatusPaid     PayslipStatus = "paid"
)

// PayslipRecord is the persisted outcome of a payroll run for one employee
// and one period. The salary fields are a snapshot taken at generation time,
// so later compensation edits never change historical payslips.
type PayslipRecord struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Salary      SalaryComponents
	Input       PeriodAdjustment
	Overtime    OvertimeBreakdown
	Deductions  DeductionBreakdown
	Totals      Totals
	NetSalary   decimal.Decimal
	Status      PayslipStatus
	GeneratedBy *string
	ApprovedBy  *string
	ApprovedAt  *time.Time
	PaidBy      *string
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}

// Approve moves a draft payslip to approved and stamps the approver.
func (p *PayslipRecord) Approve(approverID string, at time.Time) error {
	if p.Status != StatusDraft {
		return ErrInvalidTransition
	}
	p.Status = StatusApproved
	p.ApprovedBy = &approverID
	p.ApprovedAt = &at
	return nil
}

// MarkPaid moves an approved payslip to paid.
func (p *PayslipRecord) MarkPaid(payerID string, at time.Time) error {
	if p.Status != StatusApproved {
		return ErrInvalidTransition
	}
	p.Status = StatusPaid
	p.PaidBy = &payerID
	p.PaidAt = &at
	return nil
}

// GratuityResult is recomputed on demand from the current salary structure
// and joining date; it is never persisted.
type GratuityResult struct {
	Eligible    bool
	TenureYears float64
	Amount      decimal.Decimal
	Cap         decimal.Decimal
}
