package handler

import (
	"log/slog"
	"net/http"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/smartpark-payroll-api/internal/service"
)

type EmployeeHandler struct {
	empService service.EmployeeService
	logger     *slog.Logger
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		logger:     logger,
	}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	emps, err := h.empService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		resp = append(resp, toEmployeeResponse(&emps[i]))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.CreatedEmployeeResponse{
		ID:               emp.EmployeeNumber,
		EmployeeResponse: toEmployeeResponse(emp),
	})
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := parseID(rawID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	var req dto.EmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.empService.Update(r.Context(), id, &req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Employee updated successfully")
}

// Delete удаляет сотрудника вместе с его начислениями
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request, rawID string) {
	id, err := parseID(rawID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Employee deleted successfully")
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeNumber: emp.EmployeeNumber,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Position:       emp.Position,
		Address:        emp.Address,
		Telephone:      emp.Telephone,
		Gender:         emp.Gender,
		HiredDate:      dto.FormatDate(emp.HiredDate),
		DepartmentCode: emp.DepartmentCode,
	}
}
