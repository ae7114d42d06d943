package service

import (
	"context"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/smartpark-payroll-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, req *dto.DepartmentRequest) (*domain.Department, error)
	Update(ctx context.Context, code string, req *dto.DepartmentRequest) error
	Delete(ctx context.Context, code string) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{deptRepo: deptRepo}
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.List(ctx)
}

func (s *departmentService) Create(ctx context.Context, req *dto.DepartmentRequest) (*domain.Department, error) {
	dept := &domain.Department{
		Code:           req.DepartmentCode,
		Name:           req.DepartmentName,
		GrossSalary:    req.GrossSalary.Float(),
		TotalDeduction: req.TotalDeduction.Float(),
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

// Update заменяет поля подразделения; код из тела запроса не используется
func (s *departmentService) Update(ctx context.Context, code string, req *dto.DepartmentRequest) error {
	return s.deptRepo.Update(ctx, &domain.Department{
		Code:           code,
		Name:           req.DepartmentName,
		GrossSalary:    req.GrossSalary.Float(),
		TotalDeduction: req.TotalDeduction.Float(),
	})
}

func (s *departmentService) Delete(ctx context.Context, code string) error {
	return s.deptRepo.Delete(ctx, code)
}
