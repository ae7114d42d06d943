package repository

import (
	"context"

	"github.com/smartpark-payroll-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, employeeNumber int64) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	err := r.db.WithContext(ctx).Order("employee_number ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

// Update перезаписывает все поля сотрудника; отсутствующие значения становятся NULL
func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("employee_number = ?", emp.EmployeeNumber).
		Updates(map[string]any{
			"first_name":      emp.FirstName,
			"last_name":       emp.LastName,
			"position":        emp.Position,
			"address":         emp.Address,
			"telephone":       emp.Telephone,
			"gender":          emp.Gender,
			"hired_date":      emp.HiredDate,
			"department_code": emp.DepartmentCode,
		}).Error
}

// Delete удаляет сотрудника; его зарплаты удаляются каскадно внешним ключом
func (r *employeeRepository) Delete(ctx context.Context, employeeNumber int64) error {
	return r.db.WithContext(ctx).
		Where("employee_number = ?", employeeNumber).
		Delete(&domain.Employee{}).Error
}
