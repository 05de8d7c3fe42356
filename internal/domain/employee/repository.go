package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
	GetActiveByDepartment(ctx context.Context, department string) ([]Employee, error)
	UpdateCompensation(ctx context.Context, id string, salary UpdateCompensationRequest) (Employee, error)
	Deactivate(ctx context.Context, id string) error
}
