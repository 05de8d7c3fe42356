package employee

import (
	"time"

	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Department   string
	Designation  string
	Role         Role
	JoiningDate  time.Time
	Salary       payroll.SalaryComponents
	Bank         BankDetails
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleOwner       Role = "owner"
	RoleSeniorAdmin Role = "senior_admin"
	RoleAdmin       Role = "admin"
	RoleEmployee    Role = "employee"
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleOwner, RoleSeniorAdmin, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// BankDetails carries the WPS identifiers required for salary disbursement.
type BankDetails struct {
	BankName      string
	IBAN          string
	AccountNumber string
	WPSID         string
}

// HasWPSData reports whether the record is complete enough for a WPS
// salary-transfer file.
func (b BankDetails) HasWPSData() bool {
	return b.IBAN != "" && b.WPSID != ""
}
