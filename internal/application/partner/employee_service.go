package partner

import (
	"context"
	"fmt"

	"github.com/sistemaempresa/backend/internal/domain/partner"
	"github.com/sistemaempresa/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// EmployeeService handles employee use cases
type EmployeeService struct {
	employeeRepo partner.EmployeeRepository
	cities       CityLookup
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo partner.EmployeeRepository, cities CityLookup) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		cities:       cities,
	}
}

// List returns employees matching the request, active only unless asked otherwise
func (s *EmployeeService) List(ctx context.Context, req ListRequest) ([]EmployeeResponse, error) {
	employees, err := s.employeeRepo.FindAll(ctx, req.Filter())
	if err != nil {
		return nil, err
	}
	return toResponses(employees, ToEmployeeResponse), nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*EmployeeResponse, error) {
	employee, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, req EmployeeRequest) (*EmployeeResponse, error) {
	data, err := req.toData()
	if err != nil {
		return nil, err
	}
	employee, err := partner.NewEmployee(data)
	if err != nil {
		return nil, err
	}
	employee.Active = activeOr(req.Active, true)
	if err := s.validate(ctx, employee); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	logger.L(ctx).Info("Employee created", zap.Int64("employee_id", employee.ID), zap.String("role", employee.Role))
	return s.GetByID(ctx, employee.ID)
}

// Update replaces the fields of an existing employee
func (s *EmployeeService) Update(ctx context.Context, id int64, req EmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := req.toData()
	if err != nil {
		return nil, err
	}
	if err := employee.Update(data, activeOr(req.Active, employee.Active)); err != nil {
		return nil, err
	}
	if err := s.validate(ctx, employee); err != nil {
		return nil, err
	}
	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete deactivates an employee
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.employeeRepo.Deactivate(ctx, id); err != nil {
		return notFoundAs(err, employeeNotFound(id))
	}
	logger.L(ctx).Info("Employee deactivated", zap.Int64("employee_id", id))
	return nil
}

func (s *EmployeeService) validate(ctx context.Context, employee *partner.Employee) error {
	if err := ensureCity(ctx, s.cities, employee.CityID); err != nil {
		return err
	}
	return ensureUniqueDocuments(ctx, s.employeeRepo, employee.ID, employee.CPF)
}

func (s *EmployeeService) find(ctx context.Context, id int64) (*partner.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, employeeNotFound(id))
	}
	return employee, nil
}

func employeeNotFound(id int64) string {
	return fmt.Sprintf("Funcionário não encontrado com o ID: %d", id)
}
