package payroll

import (
	"github.com/atlashr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// GratuityTier defines the end-of-service accrual rate for a span of service
// years. UpToYears is the inclusive upper bound of the tier; a zero UpToYears
// marks the final, unbounded tier.
type GratuityTier struct {
	UpToYears   decimal.Decimal
	DaysPerYear decimal.Decimal
}

// Rules carries the labor-law parameters the calculation engine runs under.
// Nothing in the engine hard-codes a jurisdiction: swap the rule set and the
// same engine computes payroll under a different set of labour regulations.
type Rules struct {
	HoursPerMonth             decimal.Decimal
	DaysPerMonth              decimal.Decimal
	OvertimeNormalMultiplier  decimal.Decimal
	OvertimeNightMultiplier   decimal.Decimal
	OvertimeHolidayMultiplier decimal.Decimal
	GratuityTiers             []GratuityTier
	GratuityCapMonths         decimal.Decimal
}

// UAERules returns the UAE private-sector parameter set: 240 base hours and
// 30 payable days per month, 1.25x/1.50x overtime, gratuity accruing at 21
// days of basic pay per year for the first five years and 30 days beyond,
// capped at 24 months of fixed gross excluding the "other" component.
func UAERules() Rules {
	return Rules{
		HoursPerMonth:             decimal.NewFromInt(240),
		DaysPerMonth:              decimal.NewFromInt(30),
		OvertimeNormalMultiplier:  decimal.RequireFromString("1.25"),
		OvertimeNightMultiplier:   decimal.RequireFromString("1.50"),
		OvertimeHolidayMultiplier: decimal.RequireFromString("1.50"),
		GratuityTiers: []GratuityTier{
			{UpToYears: decimal.NewFromInt(5), DaysPerYear: decimal.NewFromInt(21)},
			{DaysPerYear: decimal.NewFromInt(30)},
		},
		GratuityCapMonths: decimal.NewFromInt(24),
	}
}

func (r Rules) Validate() error {
	var errs validator.ValidationErrors

	positives := []struct {
		field string
		value decimal.Decimal
	}{
		{"hours_per_month", r.HoursPerMonth},
		{"days_per_month", r.DaysPerMonth},
		{"overtime_normal_multiplier", r.OvertimeNormalMultiplier},
		{"overtime_night_multiplier", r.OvertimeNightMultiplier},
		{"overtime_holiday_multiplier", r.OvertimeHolidayMultiplier},
		{"gratuity_cap_months", r.GratuityCapMonths},
	}
	for _, p := range positives {
		if !p.value.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: p.field, Message: "must be positive"})
		}
	}

	if len(r.GratuityTiers) == 0 {
		errs = append(errs, validator.ValidationError{Field: "gratuity_tiers", Message: "at least one tier is required"})
	}
	for i, tier := range r.GratuityTiers {
		if !tier.DaysPerYear.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "gratuity_tiers", Message: "accrual days per year must be positive"})
		}
		last := i == len(r.GratuityTiers)-1
		if last {
			if !tier.UpToYears.IsZero() {
				errs = append(errs, validator.ValidationError{Field: "gratuity_tiers", Message: "final tier must be unbounded"})
			}
			continue
		}
		if !tier.UpToYears.IsPositive() {
			errs = append(errs, validator.ValidationError{Field: "gratuity_tiers", Message: "tier bound must be positive"})
		}
		if i > 0 && !tier.UpToYears.GreaterThan(r.GratuityTiers[i-1].UpToYears) {
			errs = append(errs, validator.ValidationError{Field: "gratuity_tiers", Message: "tier bounds must be strictly increasing"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
