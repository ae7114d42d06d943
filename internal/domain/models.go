package domain

import (
	"time"
)

// User - учётная запись для входа в систему.
// Password хранит bcrypt-хеш либо, у старых записей, пароль открытым текстом.
type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password string `gorm:"type:varchar(255);not null"`
}

// TableName задаёт имя таблицы для GORM
func (User) TableName() string {
	return "users"
}

// Department представляет подразделение
type Department struct {
	Code           string   `gorm:"column:department_code;type:varchar(50);primaryKey;check:department_code <> ''"`
	Name           *string  `gorm:"column:department_name;type:varchar(255);not null"`
	GrossSalary    *float64 `gorm:"type:numeric(10,2)"`
	TotalDeduction *float64 `gorm:"type:numeric(10,2)"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Employee представляет сотрудника.
// DepartmentCode не связан внешним ключом: удаление подразделения оставляет ссылку как есть.
type Employee struct {
	EmployeeNumber int64      `gorm:"primaryKey;autoIncrement"`
	FirstName      *string    `gorm:"type:varchar(255);not null"`
	LastName       *string    `gorm:"type:varchar(255);not null"`
	Position       *string    `gorm:"type:varchar(255)"`
	Address        *string    `gorm:"type:varchar(255)"`
	Telephone      *string    `gorm:"type:varchar(20)"`
	Gender         *string    `gorm:"type:varchar(10)"`
	HiredDate      *time.Time `gorm:"type:date"`
	DepartmentCode *string    `gorm:"type:varchar(50);index"`

	// Salaries задаёт внешний ключ salaries.employee_number с каскадным удалением
	Salaries []Salary `gorm:"foreignKey:EmployeeNumber;references:EmployeeNumber;constraint:OnDelete:CASCADE"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// Salary - начисление сотруднику за месяц
type Salary struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	EmployeeNumber *int64     `gorm:"index"`
	GrossSalary    *float64   `gorm:"type:numeric(10,2)"`
	TotalDeduction *float64   `gorm:"type:numeric(10,2)"`
	NetSalary      *float64   `gorm:"type:numeric(10,2)"`
	Month          *time.Time `gorm:"type:date"`

}

// TableName задаёт имя таблицы для GORM
func (Salary) TableName() string {
	return "salaries"
}

// NetSalary вычисляет чистую зарплату.
// Переданное значение используется, только если оно задано и не равно нулю.
// Без брутто или удержаний результат не определён (NULL).
func NetSalary(gross, deduction, supplied *float64) *float64 {
	if supplied != nil && *supplied != 0 {
		return supplied
	}
	if gross == nil || deduction == nil {
		return nil
	}
	net := *gross - *deduction
	return &net
}
