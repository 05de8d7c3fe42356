package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter Filter) (ListEmployeeResponse, error)
	UpdateCompensation(ctx context.Context, id string, req UpdateCompensationRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, id string) error
}
