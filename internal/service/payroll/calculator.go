package payroll

import (
	"time"

	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
	"github.com/atlashr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Calculator is the payroll computation engine. It is a pure function of its
// inputs and the rule set it was constructed with: no I/O, no shared state,
// safe for concurrent use from any number of request handlers.
type Calculator struct {
	rules payroll.Rules
}

func NewCalculator(rules payroll.Rules) (*Calculator, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{rules: rules}, nil
}

func (c *Calculator) Rules() payroll.Rules {
	return c.rules
}

// HourlyRate derives the overtime base rate from basic salary.
func (c *Calculator) HourlyRate(basic decimal.Decimal) decimal.Decimal {
	return basic.Div(c.rules.HoursPerMonth)
}

// DailyRate derives the unpaid-leave rate from fixed gross.
func (c *Calculator) DailyRate(fixedGross decimal.Decimal) decimal.Decimal {
	return fixedGross.Div(c.rules.DaysPerMonth)
}

// OvertimePay converts per-category overtime hours into itemized amounts.
// Zero hours in a category yields a zero amount; there is no minimum-hours
// threshold.
func (c *Calculator) OvertimePay(basic decimal.Decimal, hours payroll.OvertimeHours) (payroll.OvertimeBreakdown, error) {
	var errs validator.ValidationErrors

	if basic.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic", Message: "must be non-negative"})
	}
	if err := hours.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if len(errs) > 0 {
		return payroll.OvertimeBreakdown{}, errs
	}

	rate := c.HourlyRate(basic)
	normal := overtimeLine(hours.Normal, rate, c.rules.OvertimeNormalMultiplier)
	night := overtimeLine(hours.Night, rate, c.rules.OvertimeNightMultiplier)
	holiday := overtimeLine(hours.Holiday, rate, c.rules.OvertimeHolidayMultiplier)

	return payroll.OvertimeBreakdown{
		Normal:  normal,
		Night:   night,
		Holiday: holiday,
		Total:   normal.Amount.Add(night.Amount).Add(holiday.Amount),
	}, nil
}

func overtimeLine(hours, rate, multiplier decimal.Decimal) payroll.OvertimeLine {
	return payroll.OvertimeLine{
		Hours:      hours,
		HourlyRate: rate,
		Multiplier: multiplier,
		Amount:     hours.Mul(rate).Mul(multiplier),
	}
}

// Deductions converts unpaid-leave days and flat deductions into amounts.
// The total is monotonically non-decreasing in every input.
func (c *Calculator) Deductions(fixedGross decimal.Decimal, adj payroll.PeriodAdjustment) (payroll.DeductionBreakdown, error) {
	var errs validator.ValidationErrors

	if fixedGross.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "fixed_gross", Message: "must be non-negative"})
	}
	if err := adj.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if adj.UnpaidLeaveDays.GreaterThan(c.rules.DaysPerMonth) {
		errs = append(errs, validator.ValidationError{Field: "unpaid_leave_days", Message: "cannot exceed the days in the pay period"})
	}
	if len(errs) > 0 {
		return payroll.DeductionBreakdown{}, errs
	}

	daily := c.DailyRate(fixedGross)
	unpaid := adj.UnpaidLeaveDays.Mul(daily)

	return payroll.DeductionBreakdown{
		UnpaidLeaveDays:   adj.UnpaidLeaveDays,
		DailyRate:         daily,
		UnpaidLeaveAmount: unpaid,
		Loan:              adj.LoanDeduction,
		Other:             adj.OtherDeduction,
		Total:             unpaid.Add(adj.LoanDeduction).Add(adj.OtherDeduction),
	}, nil
}

// BuildPayslip assembles a draft payslip from a salary snapshot and the
// period adjustment. Net salary is not clamped: it can go negative when
// deductions exceed earnings, and whether to block such a payslip is the
// caller's policy.
func (c *Calculator) BuildPayslip(salary payroll.SalaryComponents, adj payroll.PeriodAdjustment) (payroll.PayslipRecord, error) {
	if err := salary.Validate(); err != nil {
		return payroll.PayslipRecord{}, err
	}

	overtime, err := c.OvertimePay(salary.Basic, adj.Overtime)
	if err != nil {
		return payroll.PayslipRecord{}, err
	}

	fixedGross := salary.FixedGross()
	deductions, err := c.Deductions(fixedGross, adj)
	if err != nil {
		return payroll.PayslipRecord{}, err
	}

	net := fixedGross.Add(overtime.Total).Add(adj.Bonus).Add(adj.Arrears).Sub(deductions.Total)

	return payroll.PayslipRecord{
		Salary:     salary,
		Input:      adj,
		Overtime:   overtime,
		Deductions: deductions,
		Totals: payroll.Totals{
			Overtime:   overtime.Total,
			Bonus:      adj.Bonus,
			Arrears:    adj.Arrears,
			Deductions: deductions.Total,
			Gross:      fixedGross,
		},
		NetSalary: net,
		Status:    payroll.StatusDraft,
	}, nil
}

const daysPerYear = 365.25

// Gratuity computes the end-of-service accrual as of the given date. Service
// under one year earns nothing; beyond that, each tier of the rule set
// accrues its configured number of days of basic pay per year of service,
// and the result is capped at GratuityCapMonths of basic+housing+transport.
// The five-year boundary itself accrues entirely in the lower tier.
func (c *Calculator) Gratuity(salary payroll.SalaryComponents, joiningDate, asOf time.Time) (payroll.GratuityResult, error) {
	if err := salary.Validate(); err != nil {
		return payroll.GratuityResult{}, err
	}
	if asOf.Before(joiningDate) {
		return payroll.GratuityResult{}, validator.ValidationErrors{
			{Field: "as_of_date", Message: "must not precede the joining date"},
		}
	}

	tenureYears := asOf.Sub(joiningDate).Hours() / 24 / daysPerYear
	cap := salary.Basic.Add(salary.Housing).Add(salary.Transport).Mul(c.rules.GratuityCapMonths)

	result := payroll.GratuityResult{
		TenureYears: tenureYears,
		Amount:      decimal.Zero,
		Cap:         cap,
	}
	if tenureYears < 1 {
		return result, nil
	}
	result.Eligible = true

	dailyBasic := salary.Basic.Div(c.rules.DaysPerMonth)
	tenure := decimal.NewFromFloat(tenureYears)

	amount := decimal.Zero
	lower := decimal.Zero
	for _, tier := range c.rules.GratuityTiers {
		upper := tenure
		if !tier.UpToYears.IsZero() && tier.UpToYears.LessThan(tenure) {
			upper = tier.UpToYears
		}
		if upper.GreaterThan(lower) {
			amount = amount.Add(tier.DaysPerYear.Mul(dailyBasic).Mul(upper.Sub(lower)))
		}
		lower = upper
		if !lower.LessThan(tenure) {
			break
		}
	}

	if amount.GreaterThan(cap) {
		amount = cap
	}
	result.Amount = amount
	return result, nil
}
