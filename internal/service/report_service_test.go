package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportRepo struct {
	employees, departments int64
	totals                 repository.SalaryTotals
	trends                 []domain.MonthlyTotal
	payroll                []domain.PayrollRow
	err                    error
	lastPrefix             string
}

func (s *stubReportRepo) CountEmployees(context.Context) (int64, error)   { return s.employees, s.err }
func (s *stubReportRepo) CountDepartments(context.Context) (int64, error) { return s.departments, nil }
func (s *stubReportRepo) SalaryTotals(context.Context) (repository.SalaryTotals, error) {
	return s.totals, nil
}
func (s *stubReportRepo) DepartmentDistribution(context.Context) ([]domain.DepartmentHeadcount, error) {
	return nil, nil
}
func (s *stubReportRepo) LatestMonthlyTotals(_ context.Context, limit int) ([]domain.MonthlyTotal, error) {
	if len(s.trends) > limit {
		return s.trends[:limit], nil
	}
	return s.trends, nil
}
func (s *stubReportRepo) RecentHires(context.Context, int) ([]domain.RecentHire, error) {
	return nil, nil
}
func (s *stubReportRepo) Payroll(_ context.Context, prefix string) ([]domain.PayrollRow, error) {
	s.lastPrefix = prefix
	return s.payroll, nil
}

func TestDashboard_ReversesTrendsAndRoundsAverage(t *testing.T) {
	repo := &stubReportRepo{
		employees:   3,
		departments: 2,
		totals:      repository.SalaryTotals{Total: 1000, Average: 333.5},
		trends: []domain.MonthlyTotal{
			{Month: "2024-03", Total: 30},
			{Month: "2024-02", Total: 20},
			{Month: "2024-01", Total: 10},
		},
	}

	summary, err := NewReportService(repo).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.KPI.TotalEmployees)
	assert.Equal(t, int64(2), summary.KPI.TotalDepartments)
	assert.Equal(t, 1000.0, summary.KPI.TotalSalaryPaid)
	assert.Equal(t, 334.0, summary.KPI.AvgSalary)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, []string{
		summary.SalaryTrends[0].Month, summary.SalaryTrends[1].Month, summary.SalaryTrends[2].Month,
	})
}

func TestDashboard_AverageRoundsHalfUp(t *testing.T) {
	tests := []struct {
		average float64
		want    float64
	}{
		{2.5, 3},
		{-2.5, -2},
		{-2.6, -3},
		{99.49, 99},
	}

	for _, tt := range tests {
		repo := &stubReportRepo{totals: repository.SalaryTotals{Average: tt.average}}
		summary, err := NewReportService(repo).Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tt.want, summary.KPI.AvgSalary, "average %v", tt.average)
	}
}

func TestDashboard_EmptyListsAreNotNil(t *testing.T) {
	summary, err := NewReportService(&stubReportRepo{}).Dashboard(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, summary.DepartmentDistribution)
	assert.NotNil(t, summary.SalaryTrends)
	assert.NotNil(t, summary.RecentHires)
	assert.Zero(t, summary.KPI.TotalSalaryPaid)
	assert.Zero(t, summary.KPI.AvgSalary)
}

func TestDashboard_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewReportService(&stubReportRepo{err: boom}).Dashboard(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPayroll_MonthFilter(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)
	ctx := context.Background()

	_, err := svc.Payroll(ctx, "2024-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-05", repo.lastPrefix)

	_, err = svc.Payroll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "", repo.lastPrefix)

	for _, bad := range []string{"2024_05", "May", "2024-05-01-01", "2024%"} {
		_, err = svc.Payroll(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidMonth, bad)
	}
}

func TestExportPayroll_WritesWorkbook(t *testing.T) {
	var buf bytes.Buffer
	err := NewReportService(&stubReportRepo{}).ExportPayroll(context.Background(), "", &buf)
	require.NoError(t, err)
	// xlsx - zip-архив
	assert.Equal(t, []byte("PK"), buf.Bytes()[:2])
}
