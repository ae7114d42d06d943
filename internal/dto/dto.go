package dto

// LoginRequest - запрос на вход
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest - запрос на регистрацию
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest - запрос на изменение имени пользователя и/или пароля
type UpdateProfileRequest struct {
	CurrentUsername string `json:"currentUsername" validate:"required"`
	Username        string `json:"username" validate:"max=255"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"`
}

// DepartmentRequest - тело POST/PUT для подразделения.
// При PUT DepartmentCode игнорируется: код неизменяем.
type DepartmentRequest struct {
	DepartmentCode string  `json:"DepartmentCode"`
	DepartmentName *string `json:"DepartmentName"`
	GrossSalary    Number  `json:"GrossSalary"`
	TotalDeduction Number  `json:"TotalDeduction"`
}

// EmployeeRequest - тело POST/PUT для сотрудника
type EmployeeRequest struct {
	FirstName      *string `json:"FirstName"`
	LastName       *string `json:"LastName"`
	Position       *string `json:"Position"`
	Address        *string `json:"Address"`
	Telephone      *string `json:"Telephone"`
	Gender         *string `json:"Gender"`
	HiredDate      Date    `json:"hiredDate"`
	DepartmentCode *string `json:"DepartmentCode"`
}

// SalaryRequest - тело POST/PUT для зарплаты
type SalaryRequest struct {
	EmployeeNumber Number `json:"employeeNumber"`
	GrossSalary    Number `json:"GrossSalary"`
	TotalDeduction Number `json:"TotalDeduction"`
	NetSalary      Number `json:"NetSalary"`
	Month          Date   `json:"month"`
}

// MessageResponse - ответ с сообщением
type MessageResponse struct {
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// DepartmentResponse - подразделение
type DepartmentResponse struct {
	DepartmentCode string   `json:"DepartmentCode"`
	DepartmentName *string  `json:"DepartmentName"`
	GrossSalary    *float64 `json:"GrossSalary"`
	TotalDeduction *float64 `json:"TotalDeduction"`
}

// EmployeeResponse - сотрудник
type EmployeeResponse struct {
	EmployeeNumber int64   `json:"employeeNumber"`
	FirstName      *string `json:"FirstName"`
	LastName       *string `json:"LastName"`
	Position       *string `json:"Position"`
	Address        *string `json:"Address"`
	Telephone      *string `json:"Telephone"`
	Gender         *string `json:"Gender"`
	HiredDate      *string `json:"hiredDate"`
	DepartmentCode *string `json:"DepartmentCode"`
}

// CreatedEmployeeResponse - ответ на создание сотрудника
type CreatedEmployeeResponse struct {
	ID int64 `json:"id"`
	EmployeeResponse
}

// SalaryResponse - запись о зарплате
type SalaryResponse struct {
	ID             int64    `json:"id"`
	EmployeeNumber *int64   `json:"employeeNumber"`
	GrossSalary    *float64 `json:"GrossSalary"`
	TotalDeduction *float64 `json:"TotalDeduction"`
	NetSalary      *float64 `json:"NetSalary"`
	Month          *string  `json:"month"`
	FirstName      string   `json:"FirstName,omitempty"`
	LastName       string   `json:"LastName,omitempty"`
}

// PayrollRowResponse - строка платёжной ведомости
type PayrollRowResponse struct {
	EmployeeNumber int64    `json:"employeeNumber"`
	FirstName      string   `json:"FirstName"`
	LastName       string   `json:"LastName"`
	Position       *string  `json:"Position"`
	DepartmentName string   `json:"DepartmentName"`
	GrossSalary    *float64 `json:"GrossSalary"`
	TotalDeduction *float64 `json:"TotalDeduction"`
	NetSalary      *float64 `json:"NetSalary"`
	Month          *string  `json:"month"`
}

// DashboardResponse - сводка для главной страницы
type DashboardResponse struct {
	KPI         KPIResponse          `json:"kpi"`
	Charts      ChartsResponse       `json:"charts"`
	RecentHires []RecentHireResponse `json:"recentHires"`
}

type KPIResponse struct {
	TotalEmployees   int64   `json:"totalEmployees"`
	TotalDepartments int64   `json:"totalDepartments"`
	TotalSalaryPaid  float64 `json:"totalSalaryPaid"`
	AvgSalary        float64 `json:"avgSalary"`
}

type ChartsResponse struct {
	DepartmentDistribution []DepartmentCountResponse `json:"departmentDistribution"`
	SalaryTrends           []SalaryTrendResponse     `json:"salaryTrends"`
}

type DepartmentCountResponse struct {
	DepartmentName string `json:"DepartmentName"`
	Count          int64  `json:"count"`
}

type SalaryTrendResponse struct {
	MonthStr string  `json:"monthStr"`
	Total    float64 `json:"total"`
}

type RecentHireResponse struct {
	FirstName      string  `json:"FirstName"`
	LastName       string  `json:"LastName"`
	Position       *string `json:"Position"`
	HiredDate      *string `json:"hiredDate"`
	DepartmentCode *string `json:"DepartmentCode"`
}

// PayrollQuery - параметры отчёта; month - префикс даты, обычно YYYY-MM
type PayrollQuery struct {
	Month string `validate:"omitempty,max=10"`
}
