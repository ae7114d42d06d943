package repository

import (
	"context"

	"github.com/smartpark-payroll-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, code string) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	departments := []domain.Department{}
	err := r.db.WithContext(ctx).Order("department_code ASC").Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

// Update перезаписывает все поля, кроме кода; отсутствующие значения становятся NULL
func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("department_code = ?", dept.Code).
		Updates(map[string]any{
			"department_name": dept.Name,
			"gross_salary":    dept.GrossSalary,
			"total_deduction": dept.TotalDeduction,
		}).Error
}

// Delete удаляет подразделение; сотрудники с этим кодом остаются без изменений
func (r *departmentRepository) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Where("department_code = ?", code).
		Delete(&domain.Department{}).Error
}
