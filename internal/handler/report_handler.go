package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/smartpark-payroll-api/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	reportService service.ReportService
	validator     *validator.Validate
	logger        *slog.Logger
}

func NewReportHandler(reportService service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		validator:     validator.New(),
		logger:        logger,
	}
}

func (h *ReportHandler) Payroll(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parsePayrollQuery(w, r)
	if !ok {
		return
	}

	rows, err := h.reportService.Payroll(r.Context(), query.Month)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.PayrollRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.PayrollRowResponse{
			EmployeeNumber: row.EmployeeNumber,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			Position:       row.Position,
			DepartmentName: row.DepartmentName,
			GrossSalary:    row.GrossSalary,
			TotalDeduction: row.TotalDeduction,
			NetSalary:      row.NetSalary,
			Month:          dto.FormatDate(row.Month),
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// ExportPayroll отдаёт ведомость файлом xlsx.
// Книга собирается в памяти, чтобы ошибка ещё могла стать ответом 500.
func (h *ReportHandler) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	query, ok := h.parsePayrollQuery(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.reportService.ExportPayroll(r.Context(), query.Month, &buf); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	filename := "payroll.xlsx"
	if query.Month != "" {
		filename = fmt.Sprintf("payroll-%s.xlsx", query.Month)
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, toDashboardResponse(summary))
}

func (h *ReportHandler) parsePayrollQuery(w http.ResponseWriter, r *http.Request) (dto.PayrollQuery, bool) {
	query := dto.PayrollQuery{Month: r.URL.Query().Get("month")}
	if err := h.validator.Struct(&query); err != nil {
		respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return query, false
	}
	return query, true
}

func toDashboardResponse(s *domain.DashboardSummary) dto.DashboardResponse {
	resp := dto.DashboardResponse{
		KPI: dto.KPIResponse{
			TotalEmployees:   s.KPI.TotalEmployees,
			TotalDepartments: s.KPI.TotalDepartments,
			TotalSalaryPaid:  s.KPI.TotalSalaryPaid,
			AvgSalary:        s.KPI.AvgSalary,
		},
		Charts: dto.ChartsResponse{
			DepartmentDistribution: make([]dto.DepartmentCountResponse, 0, len(s.DepartmentDistribution)),
			SalaryTrends:           make([]dto.SalaryTrendResponse, 0, len(s.SalaryTrends)),
		},
		RecentHires: make([]dto.RecentHireResponse, 0, len(s.RecentHires)),
	}

	for _, d := range s.DepartmentDistribution {
		resp.Charts.DepartmentDistribution = append(resp.Charts.DepartmentDistribution, dto.DepartmentCountResponse{
			DepartmentName: d.DepartmentName,
			Count:          d.Count,
		})
	}
	for _, t := range s.SalaryTrends {
		resp.Charts.SalaryTrends = append(resp.Charts.SalaryTrends, dto.SalaryTrendResponse{
			MonthStr: t.Month,
			Total:    t.Total,
		})
	}
	for _, e := range s.RecentHires {
		resp.RecentHires = append(resp.RecentHires, dto.RecentHireResponse{
			FirstName:      e.FirstName,
			LastName:       e.LastName,
			Position:       e.Position,
			HiredDate:      dto.FormatDate(e.HiredDate),
			DepartmentCode: e.DepartmentCode,
		})
	}

	return resp
}
