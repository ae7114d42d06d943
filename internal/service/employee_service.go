package service

import (
	"context"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/smartpark-payroll-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, employeeNumber int64, req *dto.EmployeeRequest) error
	Delete(ctx context.Context, employeeNumber int64) error
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.List(ctx)
}

func (s *employeeService) Create(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error) {
	emp := employeeFromRequest(req)

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, employeeNumber int64, req *dto.EmployeeRequest) error {
	emp := employeeFromRequest(req)
	emp.EmployeeNumber = employeeNumber
	return s.empRepo.Update(ctx, emp)
}

func (s *employeeService) Delete(ctx context.Context, employeeNumber int64) error {
	return s.empRepo.Delete(ctx, employeeNumber)
}

func employeeFromRequest(req *dto.EmployeeRequest) *domain.Employee {
	return &domain.Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Position:       req.Position,
		Address:        req.Address,
		Telephone:      req.Telephone,
		Gender:         req.Gender,
		HiredDate:      req.HiredDate.Ptr(),
		DepartmentCode: req.DepartmentCode,
	}
}
