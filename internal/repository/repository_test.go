package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartpark-payroll-api/internal/config"
	"github.com/smartpark-payroll-api/internal/database"
	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "payroll.db"),
	}, nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func str(s string) *string   { return &s }
func num(v float64) *float64 { return &v }
func id(v int64) *int64      { return &v }
func day(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func seedCarwash(t *testing.T, ctx context.Context, db *gorm.DB) (*domain.Employee, *domain.Salary) {
	t.Helper()

	require.NoError(t, repository.NewDepartmentRepository(db).Create(ctx, &domain.Department{
		Code: "CW", Name: str("Carwash"), GrossSalary: num(300000), TotalDeduction: num(20000),
	}))

	emp := &domain.Employee{FirstName: str("A"), LastName: str("B"), DepartmentCode: str("CW"), HiredDate: day(2024, 5, 17)}
	require.NoError(t, repository.NewEmployeeRepository(db).Create(ctx, emp))

	salary := &domain.Salary{
		EmployeeNumber: id(emp.EmployeeNumber),
		GrossSalary:    num(300000),
		TotalDeduction: num(20000),
		NetSalary:      domain.NetSalary(num(300000), num(20000), nil),
		Month:          day(2024, 5, 17),
	}
	require.NoError(t, repository.NewSalaryRepository(db).Create(ctx, salary))

	return emp, salary
}

func TestSalaryListAndPayroll(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	emp, _ := seedCarwash(t, ctx, db)

	rows, err := repository.NewSalaryRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 280000.0, *rows[0].NetSalary)
	assert.Equal(t, "A", rows[0].FirstName)
	assert.Equal(t, emp.EmployeeNumber, *rows[0].EmployeeNumber)

	reports := repository.NewReportRepository(db)

	payroll, err := reports.Payroll(ctx, "2024-05")
	require.NoError(t, err)
	require.Len(t, payroll, 1)
	assert.Equal(t, "Carwash", payroll[0].DepartmentName)
	assert.Equal(t, 280000.0, *payroll[0].NetSalary)
	assert.Equal(t, "2024-05-17", payroll[0].Month.Format("2006-01-02"))

	payroll, err = reports.Payroll(ctx, "2024-06")
	require.NoError(t, err)
	assert.Empty(t, payroll)

	payroll, err = reports.Payroll(ctx, "")
	require.NoError(t, err)
	assert.Len(t, payroll, 1)
}

func TestEmployeeDeleteCascadesToSalaries(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	emp, _ := seedCarwash(t, ctx, db)

	require.NoError(t, repository.NewEmployeeRepository(db).Delete(ctx, emp.EmployeeNumber))

	var count int64
	require.NoError(t, db.Model(&domain.Salary{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDepartmentDeleteLeavesEmployees(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	emp, _ := seedCarwash(t, ctx, db)

	require.NoError(t, repository.NewDepartmentRepository(db).Delete(ctx, "CW"))

	emps, err := repository.NewEmployeeRepository(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, emps, 1)
	assert.Equal(t, emp.EmployeeNumber, emps[0].EmployeeNumber)
	assert.Equal(t, "CW", *emps[0].DepartmentCode)

	// без подразделения строка выпадает из ведомости, но зарплата остаётся
	payroll, err := repository.NewReportRepository(db).Payroll(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, payroll)
}

func TestEmployeeUpdateReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := repository.NewEmployeeRepository(db)

	emp := &domain.Employee{FirstName: str("A"), LastName: str("B"), Position: str("Washer"), Telephone: str("0788")}
	require.NoError(t, repo.Create(ctx, emp))

	require.NoError(t, repo.Update(ctx, &domain.Employee{
		EmployeeNumber: emp.EmployeeNumber,
		FirstName:      str("Ann"),
		LastName:       str("B"),
	}))

	emps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, emps, 1)
	assert.Equal(t, "Ann", *emps[0].FirstName)
	assert.Nil(t, emps[0].Position)
	assert.Nil(t, emps[0].Telephone)

	// NOT NULL поля без значения отвергает сама БД
	err = repo.Update(ctx, &domain.Employee{EmployeeNumber: emp.EmployeeNumber, LastName: str("B")})
	assert.Error(t, err)
}

func TestUpdateAndDeleteMissingKeyPassThrough(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	assert.NoError(t, repository.NewEmployeeRepository(db).Update(ctx, &domain.Employee{
		EmployeeNumber: 99, FirstName: str("X"), LastName: str("Y"),
	}))
	assert.NoError(t, repository.NewEmployeeRepository(db).Delete(ctx, 99))
	assert.NoError(t, repository.NewDepartmentRepository(db).Update(ctx, &domain.Department{Code: "ZZ", Name: str("Z")}))
	assert.NoError(t, repository.NewDepartmentRepository(db).Delete(ctx, "ZZ"))
	assert.NoError(t, repository.NewSalaryRepository(db).Delete(ctx, 99))
}

func TestDepartmentCreateDuplicateCodeFails(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := repository.NewDepartmentRepository(db)

	require.NoError(t, repo.Create(ctx, &domain.Department{Code: "ST", Name: str("Stock")}))
	assert.Error(t, repo.Create(ctx, &domain.Department{Code: "ST", Name: str("Stock 2")}))
	assert.Error(t, repo.Create(ctx, &domain.Department{Code: "MC"}))
}

func TestSalaryUpdateKeepsOwner(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	emp, salary := seedCarwash(t, ctx, db)
	repo := repository.NewSalaryRepository(db)

	require.NoError(t, repo.Update(ctx, &domain.Salary{
		ID:             salary.ID,
		GrossSalary:    num(400000),
		TotalDeduction: num(50000),
		NetSalary:      num(350000),
		Month:          day(2024, 6, 1),
	}))

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, emp.EmployeeNumber, *rows[0].EmployeeNumber)
	assert.Equal(t, 350000.0, *rows[0].NetSalary)
}

func TestDashboardQueries_Empty(t *testing.T) {
	ctx := context.Background()
	reports := repository.NewReportRepository(openTestDB(t))

	totals, err := reports.SalaryTotals(ctx)
	require.NoError(t, err)
	assert.Zero(t, totals.Total)
	assert.Zero(t, totals.Average)

	trends, err := reports.LatestMonthlyTotals(ctx, 6)
	require.NoError(t, err)
	assert.NotNil(t, trends)
	assert.Empty(t, trends)

	hires, err := reports.RecentHires(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, hires)
}

func TestDashboardQueries(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	emp, _ := seedCarwash(t, ctx, db)

	require.NoError(t, repository.NewDepartmentRepository(db).Create(ctx, &domain.Department{Code: "ST", Name: str("Stock")}))
	require.NoError(t, repository.NewEmployeeRepository(db).Create(ctx, &domain.Employee{
		FirstName: str("No"), LastName: str("Date"), DepartmentCode: str("CW"),
	}))
	require.NoError(t, repository.NewSalaryRepository(db).Create(ctx, &domain.Salary{
		EmployeeNumber: id(emp.EmployeeNumber), NetSalary: num(100000), Month: day(2024, 4, 1),
	}))

	reports := repository.NewReportRepository(db)

	employees, err := reports.CountEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), employees)

	departments, err := reports.CountDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), departments)

	totals, err := reports.SalaryTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 380000.0, totals.Total)
	assert.Equal(t, 190000.0, totals.Average)

	dist, err := reports.DepartmentDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.DepartmentHeadcount{
		{DepartmentName: "Carwash", Count: 2},
		{DepartmentName: "Stock", Count: 0},
	}, dist)

	trends, err := reports.LatestMonthlyTotals(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, []domain.MonthlyTotal{
		{Month: "2024-05", Total: 280000},
		{Month: "2024-04", Total: 100000},
	}, trends)

	hires, err := reports.RecentHires(ctx, 5)
	require.NoError(t, err)
	require.Len(t, hires, 2)
	assert.Equal(t, "A", hires[0].FirstName)
	assert.Nil(t, hires[1].HiredDate)
}

func TestLatestMonthlyTotals_SkipsUndatedSalaries(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	emp, _ := seedCarwash(t, ctx, db)

	require.NoError(t, repository.NewSalaryRepository(db).Create(ctx, &domain.Salary{
		EmployeeNumber: id(emp.EmployeeNumber), NetSalary: num(5000),
	}))

	trends, err := repository.NewReportRepository(db).LatestMonthlyTotals(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, []domain.MonthlyTotal{{Month: "2024-05", Total: 280000}}, trends)

	// в сумму KPI недатированное начисление входит
	totals, err := repository.NewReportRepository(db).SalaryTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 285000.0, totals.Total)
}
