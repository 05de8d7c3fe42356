package employee

import (
	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
	"github.com/atlashr/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	Department   string          `json:"department"`
	Designation  string          `json:"designation"`
	Role         string          `json:"role,omitempty"`
	JoiningDate  string          `json:"joining_date"` // YYYY-MM-DD
	Basic        decimal.Decimal `json:"basic"`
	Housing      decimal.Decimal `json:"housing"`
	Transport    decimal.Decimal `json:"transport"`
	Other        decimal.Decimal `json:"other"`
	Bank         BankDetailsDTO  `json:"bank"`
}

type BankDetailsDTO struct {
	BankName      string `json:"bank_name,omitempty"`
	IBAN          string `json:"iban,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	WPSID         string `json:"wps_id,omitempty"`
}

func (r *CreateEmployeeRequest) Salary() payroll.SalaryComponents {
	return payroll.SalaryComponents{
		Basic:     r.Basic,
		Housing:   r.Housing,
		Transport: r.Transport,
		Other:     r.Other,
	}
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match the DEPT-NNNN format"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "is required"})
	}
	if r.Role != "" && !ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is not a recognized role"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be a YYYY-MM-DD date"})
	}
	if err := r.Salary().Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}
	if r.Bank.IBAN != "" && !validator.IsValidIBAN(r.Bank.IBAN) {
		errs = append(errs, validator.ValidationError{Field: "bank.iban", Message: "must be a valid UAE IBAN"})
	}
	if r.Bank.WPSID != "" && !validator.IsValidWPSID(r.Bank.WPSID) {
		errs = append(errs, validator.ValidationError{Field: "bank.wps_id", Message: "must be a 14-digit WPS person ID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateCompensationRequest is the sole mutation path for an employee's
// salary structure.
type UpdateCompensationRequest struct {
	Basic     decimal.Decimal `json:"basic"`
	Housing   decimal.Decimal `json:"housing"`
	Transport decimal.Decimal `json:"transport"`
	Other     decimal.Decimal `json:"other"`
}

func (r *UpdateCompensationRequest) Salary() payroll.SalaryComponents {
	return payroll.SalaryComponents{
		Basic:     r.Basic,
		Housing:   r.Housing,
		Transport: r.Transport,
		Other:     r.Other,
	}
}

func (r *UpdateCompensationRequest) Validate() error {
	return r.Salary().Validate()
}

type Filter struct {
	Department *string
	ActiveOnly bool
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	Department   string          `json:"department"`
	Designation  string          `json:"designation"`
	Role         string          `json:"role"`
	JoiningDate  string          `json:"joining_date"`
	Basic        decimal.Decimal `json:"basic"`
	Housing      decimal.Decimal `json:"housing"`
	Transport    decimal.Decimal `json:"transport"`
	Other        decimal.Decimal `json:"other"`
	FixedGross   decimal.Decimal `json:"fixed_gross"`
	Bank         BankDetailsDTO  `json:"bank"`
	IsActive     bool            `json:"is_active"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
