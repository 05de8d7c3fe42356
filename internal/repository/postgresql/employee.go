package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, email, department, designation, role, joining_date,
	basic_salary, housing_allowance, transport_allowance, other_allowances,
	bank_name, iban, account_number, wps_id,
	is_active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeCode, &e.FullName, &e.Email, &e.Department, &e.Designation, &e.Role, &e.JoiningDate,
		&e.Salary.Basic, &e.Salary.Housing, &e.Salary.Transport, &e.Salary.Other,
		&e.Bank.BankName, &e.Bank.IBAN, &e.Bank.AccountNumber, &e.Bank.WPSID,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (
			id, employee_code, full_name, email, department, designation, role, joining_date,
			basic_salary, housing_allowance, transport_allowance, other_allowances,
			bank_name, iban, account_number, wps_id, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING %s
	`, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FullName, emp.Email, emp.Department, emp.Designation, emp.Role, emp.JoiningDate,
		emp.Salary.Basic, emp.Salary.Housing, emp.Salary.Transport, emp.Salary.Other,
		emp.Bank.BankName, emp.Bank.IBAN, emp.Bank.AccountNumber, emp.Bank.WPSID, emp.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_employee_code") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if strings.Contains(err.Error(), "uk_employee_email") {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return r.getByField(ctx, "id", id)
}

func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return r.getByField(ctx, "employee_code", code)
}

func (r *employeeRepository) getByField(ctx context.Context, column, value string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE %s = $1`, employeeColumns, column)

	emp, err := scanEmployee(q.QueryRow(ctx, query, value))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM employees WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Department != nil {
		baseQuery += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.ActiveOnly {
		baseQuery += " AND is_active = TRUE"
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`SELECT %s %s ORDER BY employee_code ASC LIMIT $%d OFFSET $%d`,
		employeeColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, totalCount, nil
}

// GetActiveByDepartment returns every active employee, optionally narrowed
// to one department. Used by bulk payroll generation, so no pagination.
func (r *employeeRepository) GetActiveByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE is_active = TRUE`, employeeColumns)
	args := []interface{}{}
	if department != "" {
		query += " AND department = $1"
		args = append(args, department)
	}
	query += " ORDER BY employee_code ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

// UpdateCompensation is the only write path for salary components. Existing
// payslips keep their generation-time snapshot regardless of this update.
func (r *employeeRepository) UpdateCompensation(ctx context.Context, id string, req employee.UpdateCompensationRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE employees SET
			basic_salary = $1, housing_allowance = $2, transport_allowance = $3, other_allowances = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING %s
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, req.Basic, req.Housing, req.Transport, req.Other, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update compensation: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
