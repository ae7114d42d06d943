package service

import (
	"context"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/smartpark-payroll-api/internal/repository"
)

// SalaryService определяет интерфейс бизнес-логики для зарплат
type SalaryService interface {
	List(ctx context.Context) ([]domain.SalaryRow, error)
	Create(ctx context.Context, req *dto.SalaryRequest) (*domain.Salary, error)
	Update(ctx context.Context, id int64, req *dto.SalaryRequest) (*domain.Salary, error)
	Delete(ctx context.Context, id int64) error
}

type salaryService struct {
	salaryRepo repository.SalaryRepository
}

// NewSalaryService создаёт новый экземпляр сервиса
func NewSalaryService(salaryRepo repository.SalaryRepository) SalaryService {
	return &salaryService{salaryRepo: salaryRepo}
}

func (s *salaryService) List(ctx context.Context) ([]domain.SalaryRow, error) {
	return s.salaryRepo.List(ctx)
}

func (s *salaryService) Create(ctx context.Context, req *dto.SalaryRequest) (*domain.Salary, error) {
	salary := salaryFromRequest(req)
	salary.EmployeeNumber = req.EmployeeNumber.Int()

	if err := s.salaryRepo.Create(ctx, salary); err != nil {
		return nil, err
	}

	return salary, nil
}

// Update пересчитывает чистую зарплату так же, как при создании
func (s *salaryService) Update(ctx context.Context, id int64, req *dto.SalaryRequest) (*domain.Salary, error) {
	salary := salaryFromRequest(req)
	salary.ID = id

	if err := s.salaryRepo.Update(ctx, salary); err != nil {
		return nil, err
	}

	return salary, nil
}

func (s *salaryService) Delete(ctx context.Context, id int64) error {
	return s.salaryRepo.Delete(ctx, id)
}

func salaryFromRequest(req *dto.SalaryRequest) *domain.Salary {
	gross := req.GrossSalary.Float()
	deduction := req.TotalDeduction.Float()

	return &domain.Salary{
		GrossSalary:    gross,
		TotalDeduction: deduction,
		NetSalary:      domain.NetSalary(gross, deduction, req.NetSalary.Float()),
		Month:          req.Month.Ptr(),
	}
}
