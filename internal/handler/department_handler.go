package handler

import (
	"log/slog"
	"net/http"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/smartpark-payroll-api/internal/service"
)

type DepartmentHandler struct {
	deptService service.DepartmentService
	logger      *slog.Logger
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		logger:      logger,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	depts, err := h.deptService.List(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	resp := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		resp = append(resp, toDepartmentResponse(&depts[i]))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DepartmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, toDepartmentResponse(dept))
}

// Update заменяет поля подразделения с кодом из пути
func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request, code string) {
	var req dto.DepartmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.deptService.Update(r.Context(), code, &req); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Department updated successfully")
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request, code string) {
	if err := h.deptService.Delete(r.Context(), code); err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	respondMessage(w, http.StatusOK, "Department deleted successfully")
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		DepartmentCode: dept.Code,
		DepartmentName: dept.Name,
		GrossSalary:    dept.GrossSalary,
		TotalDeduction: dept.TotalDeduction,
	}
}
