package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/atlashr/hrms-backend-go/internal/domain/payroll"
	"github.com/atlashr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	ps.id, ps.employee_id, ps.period_month, ps.period_year,
	ps.basic_salary, ps.housing_allowance, ps.transport_allowance, ps.other_allowances,
	ps.input_data, ps.overtime_detail, ps.deductions_detail,
	ps.total_overtime, ps.total_bonus, ps.total_arrears, ps.total_deductions, ps.gross_salary,
	ps.net_salary, ps.status, ps.generated_by, ps.approved_by, ps.approved_at,
	ps.paid_by, ps.paid_at, ps.created_at, ps.updated_at,
	e.full_name AS employee_name, e.employee_code, e.department`

func scanPayslip(row pgx.Row) (payroll.PayslipRecord, error) {
	var rec payroll.PayslipRecord
	var inputBytes, overtimeBytes, deductionsBytes []byte
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodMonth, &rec.PeriodYear,
		&rec.Salary.Basic, &rec.Salary.Housing, &rec.Salary.Transport, &rec.Salary.Other,
		&inputBytes, &overtimeBytes, &deductionsBytes,
		&rec.Totals.Overtime, &rec.Totals.Bonus, &rec.Totals.Arrears, &rec.Totals.Deductions, &rec.Totals.Gross,
		&rec.NetSalary, &rec.Status, &rec.GeneratedBy, &rec.ApprovedBy, &rec.ApprovedAt,
		&rec.PaidBy, &rec.PaidAt, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeCode, &rec.Department,
	)
	if err != nil {
		return payroll.PayslipRecord{}, err
	}
	_ = json.Unmarshal(inputBytes, &rec.Input)
	_ = json.Unmarshal(overtimeBytes, &rec.Overtime)
	_ = json.Unmarshal(deductionsBytes, &rec.Deductions)
	return rec, nil
}

// UpsertDraft inserts or replaces the payslip for (employee, month, year).
// The conditional update leaves approved and paid records untouched; a
// conflict with such a record comes back as ErrPayslipNotEditable.
func (r *payslipRepository) UpsertDraft(ctx context.Context, record payroll.PayslipRecord) (payroll.PayslipRecord, error) {
	q := GetQuerier(ctx, r.db)

	inputJSON, _ := json.Marshal(record.Input)
	overtimeJSON, _ := json.Marshal(record.Overtime)
	deductionsJSON, _ := json.Marshal(record.Deductions)

	query := `
		INSERT INTO payslips (
			id, employee_id, period_month, period_year,
			basic_salary, housing_allowance, transport_allowance, other_allowances,
			input_data, overtime_detail, deductions_detail,
			total_overtime, total_bonus, total_arrears, total_deductions, gross_salary,
			net_salary, status, generated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (employee_id, period_month, period_year) DO UPDATE SET
			basic_salary = EXCLUDED.basic_salary,
			housing_allowance = EXCLUDED.housing_allowance,
			transport_allowance = EXCLUDED.transport_allowance,
			other_allowances = EXCLUDED.other_allowances,
			input_data = EXCLUDED.input_data,
			overtime_detail = EXCLUDED.overtime_detail,
			deductions_detail = EXCLUDED.deductions_detail,
			total_overtime = EXCLUDED.total_overtime,
			total_bonus = EXCLUDED.total_bonus,
			total_arrears = EXCLUDED.total_arrears,
			total_deductions = EXCLUDED.total_deductions,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			generated_by = EXCLUDED.generated_by,
			updated_at = NOW()
		WHERE payslips.status = 'draft'
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.PeriodMonth, record.PeriodYear,
		record.Salary.Basic, record.Salary.Housing, record.Salary.Transport, record.Salary.Other,
		inputJSON, overtimeJSON, deductionsJSON,
		record.Totals.Overtime, record.Totals.Bonus, record.Totals.Arrears, record.Totals.Deductions, record.Totals.Gross,
		record.NetSalary, record.Status, record.GeneratedBy,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayslipRecord{}, payroll.ErrPayslipNotEditable
		}
		return payroll.PayslipRecord{}, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payroll.PayslipRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips ps
		JOIN employees e ON ps.employee_id = e.id
		WHERE ps.id = $1
	`, payslipColumns)

	rec, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayslipRecord{}, payroll.ErrPayslipNotFound
		}
		return payroll.PayslipRecord{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return rec, nil
}

func (r *payslipRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayslipRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips ps
		JOIN employees e ON ps.employee_id = e.id
		WHERE ps.employee_id = $1 AND ps.period_month = $2 AND ps.period_year = $3
	`, payslipColumns)

	rec, err := scanPayslip(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayslipRecord{}, payroll.ErrPayslipNotFound
		}
		return payroll.PayslipRecord{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return rec, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payroll.PayslipFilter) ([]payroll.PayslipRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payslips ps
		JOIN employees e ON ps.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.PeriodMonth != nil {
		baseQuery += fmt.Sprintf(" AND ps.period_month = $%d", argIdx)
		args = append(args, *filter.PeriodMonth)
		argIdx++
	}
	if filter.PeriodYear != nil {
		baseQuery += fmt.Sprintf(" AND ps.period_year = $%d", argIdx)
		args = append(args, *filter.PeriodYear)
		argIdx++
	}
	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND ps.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND ps.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Department != nil {
		baseQuery += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	sortColumn := "ps.created_at"
	if filter.SortBy != "" {
		allowedColumns := map[string]string{
			"created_at":    "ps.created_at",
			"period":        "ps.period_year DESC, ps.period_month",
			"employee_name": "e.full_name",
			"employee_code": "e.employee_code",
			"net_salary":    "ps.net_salary",
		}
		if col, ok := allowedColumns[filter.SortBy]; ok {
			sortColumn = col
		}
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, payslipColumns, baseQuery, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayslipRecord
	for rows.Next() {
		rec, err := scanPayslip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payslip: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, nil
}

// ========== STATUS TRANSITIONS ==========

func (r *payslipRepository) Approve(ctx context.Context, id, approverID string) (payroll.PayslipRecord, error) {
	return r.transition(ctx, id, approverID, payroll.StatusDraft, payroll.StatusApproved, "approved_by", "approved_at")
}

func (r *payslipRepository) MarkPaid(ctx context.Context, id, payerID string) (payroll.PayslipRecord, error) {
	return r.transition(ctx, id, payerID, payroll.StatusApproved, payroll.StatusPaid, "paid_by", "paid_at")
}

// transition is a conditional status update. The WHERE clause makes it safe
// under concurrent approvals: only one caller wins, the rest see
// ErrInvalidTransition.
func (r *payslipRepository) transition(ctx context.Context, id, actorID string, from, to payroll.PayslipStatus, byColumn, atColumn string) (payroll.PayslipRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE payslips SET status = $1, %s = $2, %s = NOW(), updated_at = NOW()
		WHERE id = $3 AND status = $4
		RETURNING id
	`, byColumn, atColumn)

	var updatedID string
	err := q.QueryRow(ctx, query, to, actorID, id, from).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			exists, checkErr := r.exists(ctx, id)
			if checkErr != nil {
				return payroll.PayslipRecord{}, checkErr
			}
			if !exists {
				return payroll.PayslipRecord{}, payroll.ErrPayslipNotFound
			}
			return payroll.PayslipRecord{}, payroll.ErrInvalidTransition
		}
		return payroll.PayslipRecord{}, fmt.Errorf("failed to update payslip status: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *payslipRepository) exists(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payslips WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payslip existence: %w", err)
	}
	return exists, nil
}

func (r *payslipRepository) ApproveAllForPeriod(ctx context.Context, month, year int, approverID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips SET status = $1, approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE period_month = $3 AND period_year = $4 AND status = $5
	`

	tag, err := q.Exec(ctx, query, payroll.StatusApproved, approverID, month, year, payroll.StatusDraft)
	if err != nil {
		return 0, fmt.Errorf("failed to approve payslips: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ========== DELETE ==========

func (r *payslipRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1 AND status = $2`, id, payroll.StatusDraft)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		exists, checkErr := r.exists(ctx, id)
		if checkErr != nil {
			return checkErr
		}
		if !exists {
			return payroll.ErrPayslipNotFound
		}
		return payroll.ErrCannotDeleteNonDraft
	}
	return nil
}

func (r *payslipRepository) DeleteDraftsForPeriod(ctx context.Context, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE period_month = $1 AND period_year = $2 AND status = $3`,
		month, year, payroll.StatusDraft)
	if err != nil {
		return 0, fmt.Errorf("failed to delete draft payslips: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ========== SUMMARY ==========

func (r *payslipRepository) Summary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(gross_salary), 0),
			   COALESCE(SUM(total_overtime), 0),
			   COALESCE(SUM(total_bonus), 0),
			   COALESCE(SUM(total_arrears), 0),
			   COALESCE(SUM(total_deductions), 0),
			   COALESCE(SUM(net_salary), 0),
			   COUNT(*) FILTER (WHERE status = 'draft'),
			   COUNT(*) FILTER (WHERE status = 'approved'),
			   COUNT(*) FILTER (WHERE status = 'paid')
		FROM payslips
		WHERE period_month = $1 AND period_year = $2
	`

	summary := payroll.PayrollSummaryResponse{PeriodMonth: month, PeriodYear: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.TotalEmployees,
		&summary.TotalFixedGross, &summary.TotalOvertime, &summary.TotalBonus,
		&summary.TotalArrears, &summary.TotalDeductions, &summary.TotalNetSalary,
		&summary.DraftCount, &summary.ApprovedCount, &summary.PaidCount,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to summarize payroll period: %w", err)
	}

	return summary, nil
}
