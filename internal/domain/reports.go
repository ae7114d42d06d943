package domain

import "time"

// SalaryRow - запись о зарплате вместе с именем сотрудника
type SalaryRow struct {
	ID             int64
	EmployeeNumber *int64
	GrossSalary    *float64
	TotalDeduction *float64
	NetSalary      *float64
	Month          *time.Time
	FirstName      string
	LastName       string
}

// PayrollRow - строка платёжной ведомости
type PayrollRow struct {
	SalaryID       int64
	EmployeeNumber int64
	FirstName      string
	LastName       string
	Position       *string
	DepartmentName string
	GrossSalary    *float64
	TotalDeduction *float64
	NetSalary      *float64
	Month          *time.Time
}

// DepartmentHeadcount - число сотрудников в подразделении
type DepartmentHeadcount struct {
	DepartmentName string
	Count          int64
}

// MonthlyTotal - сумма выплат за месяц (YYYY-MM)
type MonthlyTotal struct {
	Month string
	Total float64
}

// RecentHire - недавно принятый сотрудник
type RecentHire struct {
	FirstName      string
	LastName       string
	Position       *string
	HiredDate      *time.Time
	DepartmentCode *string
}

// DashboardKPI - ключевые показатели
type DashboardKPI struct {
	TotalEmployees   int64
	TotalDepartments int64
	TotalSalaryPaid  float64
	AvgSalary        float64
}

// DashboardSummary объединяет показатели, графики и последние наймы
type DashboardSummary struct {
	KPI                    DashboardKPI
	DepartmentDistribution []DepartmentHeadcount
	SalaryTrends           []MonthlyTotal
	RecentHires            []RecentHire
}
