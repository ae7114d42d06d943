package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSalaryRepo struct {
	created *domain.Salary
	updated *domain.Salary
}

func (m *memSalaryRepo) List(context.Context) ([]domain.SalaryRow, error) { return nil, nil }
func (m *memSalaryRepo) Create(_ context.Context, s *domain.Salary) error {
	s.ID = 1
	m.created = s
	return nil
}
func (m *memSalaryRepo) Update(_ context.Context, s *domain.Salary) error {
	m.updated = s
	return nil
}
func (m *memSalaryRepo) Delete(context.Context, int64) error { return nil }

func decodeSalary(t *testing.T, body string) *dto.SalaryRequest {
	t.Helper()
	var req dto.SalaryRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return &req
}

func TestSalaryCreate_DerivesNet(t *testing.T) {
	repo := &memSalaryRepo{}
	svc := NewSalaryService(repo)

	salary, err := svc.Create(context.Background(), decodeSalary(t,
		`{"employeeNumber":"1","GrossSalary":"300000","TotalDeduction":20000,"month":"2024-05-01"}`))
	require.NoError(t, err)

	require.NotNil(t, salary.NetSalary)
	assert.Equal(t, 280000.0, *salary.NetSalary)
	assert.Equal(t, int64(1), *repo.created.EmployeeNumber)
	assert.Equal(t, "2024-05-01", salary.Month.Format(dto.DateLayout))
}

func TestSalaryCreate_SuppliedNetWins(t *testing.T) {
	svc := NewSalaryService(&memSalaryRepo{})

	salary, err := svc.Create(context.Background(), decodeSalary(t,
		`{"employeeNumber":1,"GrossSalary":100,"TotalDeduction":10,"NetSalary":95}`))
	require.NoError(t, err)
	assert.Equal(t, 95.0, *salary.NetSalary)

	salary, err = svc.Create(context.Background(), decodeSalary(t,
		`{"employeeNumber":1,"GrossSalary":100,"TotalDeduction":10,"NetSalary":""}`))
	require.NoError(t, err)
	assert.Equal(t, 90.0, *salary.NetSalary)
}

func TestSalaryUpdate_RecomputesNetAndKeepsOwner(t *testing.T) {
	repo := &memSalaryRepo{}
	svc := NewSalaryService(repo)

	_, err := svc.Update(context.Background(), 5, decodeSalary(t,
		`{"employeeNumber":9,"GrossSalary":500,"TotalDeduction":50}`))
	require.NoError(t, err)

	assert.Equal(t, int64(5), repo.updated.ID)
	assert.Equal(t, 450.0, *repo.updated.NetSalary)
	assert.Nil(t, repo.updated.EmployeeNumber)
}
