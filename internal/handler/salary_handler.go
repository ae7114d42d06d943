package handler

import (
	"log/slog"
	"net/http"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/smartpark-payroll-api/internal/service"
)

type SalaryHandler struct {
	salaryService service.SalaryService
	logger        *slog.Logger
}

func NewSalaryHandler(salaryService service.SalaryService, logger *slog.Logger) *SalaryHandler {
	return &SalaryHandler{
		salaryService: salaryService,
		logger:        logger,
	}
}

func (h *SalaryHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.salaryService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.SalaryResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.SalaryResponse{
			ID:             row.ID,
			EmployeeNumber: row.EmployeeNumber,
			GrossSalary:    row.GrossSalary,
			TotalDeduction: row.TotalDeduction,
			NetSalary:      row.NetSalary,
			Month:          dto.FormatDate(row.Month),
			FirstName:      row.FirstName,
			LastName:       row.LastName,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// Create отвечает созданной записью с вычисленной чистой зарплатой
func (h *SalaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SalaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	salary, err := h.salaryService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toSalaryResponse(salary))
}

func (h *SalaryHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := parseID(rawID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	var req dto.SalaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.salaryService.Update(r.Context(), id, &req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Salary updated successfully")
}

func (h *SalaryHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := parseID(rawID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	if err := h.salaryService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Salary deleted successfully")
}

func toSalaryResponse(s *domain.Salary) dto.SalaryResponse {
	return dto.SalaryResponse{
		ID:             s.ID,
		EmployeeNumber: s.EmployeeNumber,
		GrossSalary:    s.GrossSalary,
		TotalDeduction: s.TotalDeduction,
		NetSalary:      s.NetSalary,
		Month:          dto.FormatDate(s.Month),
	}
}
