package repository

import (
	"context"

	"github.com/smartpark-payroll-api/internal/domain"
	"gorm.io/gorm"
)

// SalaryTotals - сумма и среднее чистой зарплаты
type SalaryTotals struct {
	Total   float64
	Average float64
}

// ReportRepository определяет агрегирующие запросы для сводки и ведомости
type ReportRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	SalaryTotals(ctx context.Context) (SalaryTotals, error)
	DepartmentDistribution(ctx context.Context) ([]domain.DepartmentHeadcount, error)
	LatestMonthlyTotals(ctx context.Context, limit int) ([]domain.MonthlyTotal, error)
	RecentHires(ctx context.Context, limit int) ([]domain.RecentHire, error)
	Payroll(ctx context.Context, monthPrefix string) ([]domain.PayrollRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository создаёт новый экземпляр репозитория
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Employee{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountDepartments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) SalaryTotals(ctx context.Context) (SalaryTotals, error) {
	var totals SalaryTotals
	err := r.db.WithContext(ctx).
		Model(&domain.Salary{}).
		Select("COALESCE(SUM(net_salary), 0) AS total, COALESCE(AVG(net_salary), 0) AS average").
		Scan(&totals).Error
	return totals, err
}

func (r *reportRepository) DepartmentDistribution(ctx context.Context) ([]domain.DepartmentHeadcount, error) {
	rows := []domain.DepartmentHeadcount{}
	err := r.db.WithContext(ctx).
		Table("departments AS d").
		Select("d.department_name, COUNT(e.employee_number) AS count").
		Joins("LEFT JOIN employees e ON d.department_code = e.department_code").
		Group("d.department_code, d.department_name").
		Order("d.department_code ASC").
		Scan(&rows).Error
	return rows, err
}

// LatestMonthlyTotals возвращает суммы за последние limit месяцев, от новых к старым.
// Начисления без месяца в тренд не попадают.
func (r *reportRepository) LatestMonthlyTotals(ctx context.Context, limit int) ([]domain.MonthlyTotal, error) {
	month := monthKey(r.db, "month")

	rows := []domain.MonthlyTotal{}
	err := r.db.WithContext(ctx).
		Model(&domain.Salary{}).
		Select(month + " AS month, COALESCE(SUM(net_salary), 0) AS total").
		Where("month IS NOT NULL").
		Group(month).
		Order("1 DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) RecentHires(ctx context.Context, limit int) ([]domain.RecentHire, error) {
	rows := []domain.RecentHire{}
	err := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Select("first_name, last_name, position, hired_date, department_code").
		Order("hired_date IS NULL").
		Order("hired_date DESC").
		Order("employee_number DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Payroll возвращает ведомость; monthPrefix сравнивается с датой месяца в виде YYYY-MM-DD
func (r *reportRepository) Payroll(ctx context.Context, monthPrefix string) ([]domain.PayrollRow, error) {
	query := r.db.WithContext(ctx).
		Table("salaries AS s").
		Select("s.id AS salary_id, e.employee_number, e.first_name, e.last_name, e.position, " +
			"d.department_name, s.gross_salary, s.total_deduction, s.net_salary, s.month").
		Joins("JOIN employees e ON s.employee_number = e.employee_number").
		Joins("JOIN departments d ON e.department_code = d.department_code")

	if monthPrefix != "" {
		query = query.Where(dateText(r.db, "s.month")+" LIKE ?", monthPrefix+"%")
	}

	rows := []domain.PayrollRow{}
	err := query.Order("s.month ASC").Order("s.id ASC").Scan(&rows).Error
	return rows, err
}
