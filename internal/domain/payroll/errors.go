package payroll

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrInvalidTransition    = errors.New("invalid payslip status transition")
	ErrPayslipNotEditable   = errors.New("payslip is no longer a draft and cannot be regenerated")
	ErrCannotDeleteNonDraft = errors.New("only draft payslips can be deleted")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
	ErrEmployeeNotFound     = errors.New("employee not found")
)
