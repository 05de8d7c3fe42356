package employee

import (
	"context"
	"testing"

	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	result := make([]employee.Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		if filter.ActiveOnly && !emp.IsActive {
			continue
		}
		if filter.Department != nil && emp.Department != *filter.Department {
			continue
		}
		result = append(result, emp)
	}
	return result, int64(len(result)), nil
}

func (f *fakeEmployeeRepo) GetActiveByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range f.employees {
		if !emp.IsActive {
			continue
		}
		if department != "" && emp.Department != department {
			continue
		}
		result = append(result, emp)
	}
	return result, nil
}

func (f *fakeEmployeeRepo) UpdateCompensation(ctx context.Context, id string, req employee.UpdateCompensationRequest) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.Salary = req.Salary()
	f.employees[id] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = false
	f.employees[id] = emp
	return nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "ENG-0001",
		FullName:     "Amira Khalid",
		Email:        "amira.khalid@example.com",
		Department:   "Engineering",
		Designation:  "Engineer",
		JoiningDate:  "2021-04-01",
		Basic:        decimal.NewFromInt(6000),
		Housing:      decimal.NewFromInt(2500),
		Transport:    decimal.NewFromInt(1000),
		Other:        decimal.NewFromInt(500),
		Bank: employee.BankDetailsDTO{
			BankName:      "Emirates NBD",
			IBAN:          "AE070331234567890123456",
			AccountNumber: "1234567890",
			WPSID:         "12345678901234",
		},
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo)

	result, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NotEmpty(t, result.ID)
	_, err = uuid.Parse(result.ID)
	require.NoError(t, err)

	assert.Equal(t, "ENG-0001", result.EmployeeCode)
	assert.Equal(t, "employee", result.Role)
	assert.Equal(t, "2021-04-01", result.JoiningDate)
	assert.Equal(t, "10000", result.FixedGross.String())
	assert.True(t, result.IsActive)

	// The row handed to the repository carries the generated ID
	stored, err := repo.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.ID, stored.ID)
}

func TestEmployeeService_Create_GeneratesDistinctIDs(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo)

	first, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.EmployeeCode = "ENG-0002"
	second.Email = "omar.said@example.com"
	result, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, result.ID)
}

func TestEmployeeService_Create_DuplicateCode(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = "other@example.com"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.EmployeeCode = "ENG-0002"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_InvalidRequest(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo)

	req := validCreateRequest()
	req.EmployeeCode = "not-a-code"
	_, err := svc.Create(context.Background(), req)

	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Empty(t, repo.employees)
}

func TestEmployeeService_UpdateCompensation(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	result, err := svc.UpdateCompensation(context.Background(), created.ID, employee.UpdateCompensationRequest{
		Basic:     decimal.NewFromInt(7000),
		Housing:   decimal.NewFromInt(3000),
		Transport: decimal.NewFromInt(1000),
		Other:     decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "11500", result.FixedGross.String())
}

func TestEmployeeService_UpdateCompensation_NegativeComponent(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.UpdateCompensation(context.Background(), created.ID, employee.UpdateCompensationRequest{
		Basic: decimal.NewFromInt(-100),
	})

	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)
}

func TestEmployeeService_Deactivate(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(nil, repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), created.ID))

	result, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, result.IsActive)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc := NewEmployeeService(nil, newFakeEmployeeRepo())

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
