package response

import (
	"errors"
	"net/http"

	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
	"github.com/atlashr/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, "Payslip is not in a state that allows this action")
	case errors.Is(err, payroll.ErrPayslipNotEditable):
		Conflict(w, "Payslip has been approved or paid and can no longer be regenerated")
	case errors.Is(err, payroll.ErrCannotDeleteNonDraft):
		Conflict(w, "Only draft payslips can be deleted")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
