package payroll

import (
	"github.com/atlashr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATION DTOs ==========

type OvertimeHoursInput struct {
	Normal  decimal.Decimal `json:"normal"`
	Night   decimal.Decimal `json:"night"`
	Holiday decimal.Decimal `json:"holiday"`
}

type GeneratePayslipRequest struct {
	EmployeeID      string             `json:"employee_id"`
	PeriodMonth     int                `json:"period_month"`
	PeriodYear      int                `json:"period_year"`
	OvertimeHours   OvertimeHoursInput `json:"overtime_hours"`
	Bonus           decimal.Decimal    `json:"bonus"`
	Arrears         decimal.Decimal    `json:"arrears"`
	UnpaidLeaveDays decimal.Decimal    `json:"unpaid_leave_days"`
	LoanDeduction   decimal.Decimal    `json:"loan_deduction"`
	OtherDeduction  decimal.Decimal    `json:"other_deduction"`
}

func (r *GeneratePayslipRequest) Adjustment() PeriodAdjustment {
	return PeriodAdjustment{
		Overtime: OvertimeHours{
			Normal:  r.OvertimeHours.Normal,
			Night:   r.OvertimeHours.Night,
			Holiday: r.OvertimeHours.Holiday,
		},
		Bonus:           r.Bonus,
		Arrears:         r.Arrears,
		UnpaidLeaveDays: r.UnpaidLeaveDays,
		LoanDeduction:   r.LoanDeduction,
		OtherDeduction:  r.OtherDeduction,
	}
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	errs = append(errs, validatePeriod(r.PeriodMonth, r.PeriodYear)...)
	if err := r.Adjustment().Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkGeneratePayslipRequest struct {
	Department  string `json:"department"` // "All" targets every department
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
}

func (r *BulkGeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	errs = append(errs, validatePeriod(r.PeriodMonth, r.PeriodYear)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveAllRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *ApproveAllRequest) Validate() error {
	if errs := validatePeriod(r.PeriodMonth, r.PeriodYear); len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	return errs
}

// ========== RESPONSE DTOs ==========

type SalaryComponentsResponse struct {
	Basic      decimal.Decimal `json:"basic"`
	Housing    decimal.Decimal `json:"housing"`
	Transport  decimal.Decimal `json:"transport"`
	Other      decimal.Decimal `json:"other"`
	FixedGross decimal.Decimal `json:"fixed_gross"`
}

type OvertimeLineResponse struct {
	Hours      decimal.Decimal `json:"hours"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Amount     decimal.Decimal `json:"amount"`
}

type OvertimeBreakdownResponse struct {
	Normal  OvertimeLineResponse `json:"normal"`
	Night   OvertimeLineResponse `json:"night"`
	Holiday OvertimeLineResponse `json:"holiday"`
	Total   decimal.Decimal      `json:"total"`
}

type DeductionBreakdownResponse struct {
	UnpaidLeaveDays   decimal.Decimal `json:"unpaid_leave_days"`
	DailyRate         decimal.Decimal `json:"daily_rate"`
	UnpaidLeaveAmount decimal.Decimal `json:"unpaid_leave_amount"`
	Loan              decimal.Decimal `json:"loan"`
	Other             decimal.Decimal `json:"other"`
	Total             decimal.Decimal `json:"total"`
}

type TotalsResponse struct {
	Overtime   decimal.Decimal `json:"overtime"`
	Bonus      decimal.Decimal `json:"bonus"`
	Arrears    decimal.Decimal `json:"arrears"`
	Deductions decimal.Decimal `json:"deductions"`
	Gross      decimal.Decimal `json:"gross"`
}

type PayslipResponse struct {
	ID           string                     `json:"id"`
	EmployeeID   string                     `json:"employee_id"`
	EmployeeName string                     `json:"employee_name,omitempty"`
	EmployeeCode string                     `json:"employee_code,omitempty"`
	Department   string                     `json:"department,omitempty"`
	PeriodMonth  int                        `json:"period_month"`
	PeriodYear   int                        `json:"period_year"`
	Salary       SalaryComponentsResponse   `json:"salary"`
	Overtime     OvertimeBreakdownResponse  `json:"overtime"`
	Deductions   DeductionBreakdownResponse `json:"deductions"`
	Totals       TotalsResponse             `json:"totals"`
	NetSalary    decimal.Decimal            `json:"net_salary"`
	Status       string                     `json:"status"`
	GeneratedBy  *string                    `json:"generated_by,omitempty"`
	ApprovedBy   *string                    `json:"approved_by,omitempty"`
	ApprovedAt   *string                    `json:"approved_at,omitempty"`
	PaidBy       *string                    `json:"paid_by,omitempty"`
	PaidAt       *string                    `json:"paid_at,omitempty"`
}

type PayslipFilter struct {
	PeriodMonth *int    `json:"period_month,omitempty"`
	PeriodYear  *int    `json:"period_year,omitempty"`
	Status      *string `json:"status,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	Department  *string `json:"department,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
	SortBy      string  `json:"sort_by"`
	SortOrder   string  `json:"sort_order"`
}

type ListPayslipResponse struct {
	Data       []PayslipResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type PayrollSummaryResponse struct {
	PeriodMonth     int             `json:"period_month"`
	PeriodYear      int             `json:"period_year"`
	TotalEmployees  int             `json:"total_employees"`
	TotalFixedGross decimal.Decimal `json:"total_fixed_gross"`
	TotalOvertime   decimal.Decimal `json:"total_overtime"`
	TotalBonus      decimal.Decimal `json:"total_bonus"`
	TotalArrears    decimal.Decimal `json:"total_arrears"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetSalary  decimal.Decimal `json:"total_net_salary"`
	DraftCount      int             `json:"draft_count"`
	ApprovedCount   int             `json:"approved_count"`
	PaidCount       int             `json:"paid_count"`
}

// ========== GRATUITY DTOs ==========

type GratuityResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	EmployeeCode string          `json:"employee_code,omitempty"`
	AsOfDate     string          `json:"as_of_date"`
	Eligible     bool            `json:"eligible"`
	TenureYears  float64         `json:"tenure_years"`
	Amount       decimal.Decimal `json:"amount"`
	Cap          decimal.Decimal `json:"cap"`
}

type GratuityReportResponse struct {
	AsOfDate       string             `json:"as_of_date"`
	TotalLiability decimal.Decimal    `json:"total_liability"`
	Entries        []GratuityResponse `json:"entries"`
}
