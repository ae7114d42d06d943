package repository

import (
	"context"

	"github.com/smartpark-payroll-api/internal/domain"
	"gorm.io/gorm"
)

// SalaryRepository определяет интерфейс для работы с зарплатами
type SalaryRepository interface {
	List(ctx context.Context) ([]domain.SalaryRow, error)
	Create(ctx context.Context, salary *domain.Salary) error
	Update(ctx context.Context, salary *domain.Salary) error
	Delete(ctx context.Context, id int64) error
}

type salaryRepository struct {
	db *gorm.DB
}

// NewSalaryRepository создаёт новый экземпляр репозитория
func NewSalaryRepository(db *gorm.DB) SalaryRepository {
	return &salaryRepository{db: db}
}

func (r *salaryRepository) List(ctx context.Context) ([]domain.SalaryRow, error) {
	rows := []domain.SalaryRow{}
	err := r.db.WithContext(ctx).
		Table("salaries AS s").
		Select("s.id, s.employee_number, s.gross_salary, s.total_deduction, s.net_salary, s.month, e.first_name, e.last_name").
		Joins("JOIN employees e ON s.employee_number = e.employee_number").
		Order("s.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *salaryRepository) Create(ctx context.Context, salary *domain.Salary) error {
	return r.db.WithContext(ctx).Create(salary).Error
}

// Update перезаписывает суммы и месяц; владелец записи не меняется
func (r *salaryRepository) Update(ctx context.Context, salary *domain.Salary) error {
	return r.db.WithContext(ctx).
		Model(&domain.Salary{}).
		Where("id = ?", salary.ID).
		Updates(map[string]any{
			"gross_salary":    salary.GrossSalary,
			"total_deduction": salary.TotalDeduction,
			"net_salary":      salary.NetSalary,
			"month":           salary.Month,
		}).Error
}

func (r *salaryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Salary{}, id).Error
}
