package service

import (
	"context"
	"io"
	"math"
	"regexp"
	"slices"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/export"
	"github.com/smartpark-payroll-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	trendMonths      = 6
	recentHiresLimit = 5
)

// Фильтр месяца - префикс даты YYYY-MM-DD
var monthFilterPattern = regexp.MustCompile(`^[0-9-]{1,10}$`)

// ReportService определяет интерфейс сводки и платёжной ведомости
type ReportService interface {
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
	Payroll(ctx context.Context, month string) ([]domain.PayrollRow, error)
	ExportPayroll(ctx context.Context, month string, w io.Writer) error
}

type reportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService создаёт новый экземпляр сервиса
func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// Dashboard выполняет независимые агрегирующие запросы параллельно
func (s *reportService) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	var (
		summary domain.DashboardSummary
		totals  repository.SalaryTotals
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.KPI.TotalEmployees, err = s.reportRepo.CountEmployees(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.KPI.TotalDepartments, err = s.reportRepo.CountDepartments(ctx)
		return err
	})
	g.Go(func() (err error) {
		totals, err = s.reportRepo.SalaryTotals(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.DepartmentDistribution, err = s.reportRepo.DepartmentDistribution(ctx)
		return err
	})
	g.Go(func() (err error) {
		summary.SalaryTrends, err = s.reportRepo.LatestMonthlyTotals(ctx, trendMonths)
		return err
	})
	g.Go(func() (err error) {
		summary.RecentHires, err = s.reportRepo.RecentHires(ctx, recentHiresLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.KPI.TotalSalaryPaid = totals.Total
	// половина округляется вверх: -2.5 даёт -2
	summary.KPI.AvgSalary = math.Floor(totals.Average + 0.5)

	// запрос отдаёт месяцы от новых к старым, графику нужен обратный порядок
	slices.Reverse(summary.SalaryTrends)

	if summary.DepartmentDistribution == nil {
		summary.DepartmentDistribution = []domain.DepartmentHeadcount{}
	}
	if summary.SalaryTrends == nil {
		summary.SalaryTrends = []domain.MonthlyTotal{}
	}
	if summary.RecentHires == nil {
		summary.RecentHires = []domain.RecentHire{}
	}

	return &summary, nil
}

func (s *reportService) Payroll(ctx context.Context, month string) ([]domain.PayrollRow, error) {
	if month != "" && !monthFilterPattern.MatchString(month) {
		return nil, domain.ErrInvalidMonth
	}
	return s.reportRepo.Payroll(ctx, month)
}

// ExportPayroll записывает ведомость в формате xlsx
func (s *reportService) ExportPayroll(ctx context.Context, month string, w io.Writer) error {
	rows, err := s.Payroll(ctx, month)
	if err != nil {
		return err
	}
	return export.WritePayroll(w, rows)
}
