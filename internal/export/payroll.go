// Package export формирует выгрузки отчётов в xlsx.
package export

import (
	"fmt"
	"io"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// PayrollSheet - имя листа с ведомостью
const PayrollSheet = "Payroll"

// moneyFormat - встроенный формат Excel "#,##0.00"
const moneyFormat = 4

var payrollHeaders = []string{
	"Employee #", "First Name", "Last Name", "Position", "Department",
	"Month", "Gross Salary", "Total Deduction", "Net Salary",
}

// WritePayroll записывает строки ведомости и итоговую строку в книгу xlsx
func WritePayroll(w io.Writer, rows []domain.PayrollRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PayrollSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: moneyFormat})
	if err != nil {
		return err
	}

	for i, header := range payrollHeaders {
		if err := setCell(f, i+1, 1, header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(PayrollSheet, "A1", "I1", headerStyle); err != nil {
		return err
	}

	var gross, deduction, net float64
	for i, row := range rows {
		r := i + 2
		month := ""
		if row.Month != nil {
			month = row.Month.Format("2006-01")
		}
		values := []any{
			row.EmployeeNumber, row.FirstName, row.LastName, deref(row.Position), row.DepartmentName,
			month, amount(row.GrossSalary), amount(row.TotalDeduction), amount(row.NetSalary),
		}
		for c, v := range values {
			if err := setCell(f, c+1, r, v); err != nil {
				return err
			}
		}
		gross += amount(row.GrossSalary)
		deduction += amount(row.TotalDeduction)
		net += amount(row.NetSalary)
	}

	totalRow := len(rows) + 2
	if len(rows) > 0 {
		if err := f.SetCellStyle(PayrollSheet, "G2", fmt.Sprintf("I%d", totalRow-1), moneyStyle); err != nil {
			return err
		}
	}
	for c, v := range map[int]any{1: "Total", 7: gross, 8: deduction, 9: net} {
		if err := setCell(f, c, totalRow, v); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(PayrollSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("I%d", totalRow), totalStyle); err != nil {
		return err
	}

	if err := f.SetColWidth(PayrollSheet, "A", "I", 16); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(PayrollSheet, cell, value)
}

func amount(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
