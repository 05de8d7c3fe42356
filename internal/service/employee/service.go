package employee

import (
	"context"

	"github.com/atlashr/hrms-backend-go/internal/domain/employee"
	"github.com/atlashr/hrms-backend-go/internal/pkg/database"
	"github.com/atlashr/hrms-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joiningDate, _ := validator.IsValidDate(req.JoiningDate)

	role := employee.RoleEmployee
	if req.Role != "" {
		role = employee.Role(req.Role)
	}

	emp := employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Department:   req.Department,
		Designation:  req.Designation,
		Role:         role,
		JoiningDate:  joiningDate,
		Salary:       req.Salary(),
		Bank: employee.BankDetails{
			BankName:      req.Bank.BankName,
			IBAN:          req.Bank.IBAN,
			AccountNumber: req.Bank.AccountNumber,
			WPSID:         req.Bank.WPSID,
		},
		IsActive: true,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToEmployeeResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) (employee.ListEmployeeResponse, error) {
	employees, totalCount, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToEmployeeResponse(emp))
	}

	return employee.ListEmployeeResponse{
		Data:       result,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *EmployeeServiceImpl) UpdateCompensation(ctx context.Context, id string, req employee.UpdateCompensationRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.UpdateCompensation(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.employeeRepo.Deactivate(ctx, id)
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		FullName:     emp.FullName,
		Email:        emp.Email,
		Department:   emp.Department,
		Designation:  emp.Designation,
		Role:         string(emp.Role),
		JoiningDate:  emp.JoiningDate.Format("2006-01-02"),
		Basic:        emp.Salary.Basic,
		Housing:      emp.Salary.Housing,
		Transport:    emp.Salary.Transport,
		Other:        emp.Salary.Other,
		FixedGross:   emp.Salary.FixedGross(),
		Bank: employee.BankDetailsDTO{
			BankName:      emp.Bank.BankName,
			IBAN:          emp.Bank.IBAN,
			AccountNumber: emp.Bank.AccountNumber,
			WPSID:         emp.Bank.WPSID,
		},
		IsActive: emp.IsActive,
	}
}
