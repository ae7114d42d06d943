package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
)

// respondJSON пишет ответ в формате JSON
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, errMsg, message string) {
	respondJSON(w, status, dto.ErrorResponse{
		Error:   errMsg,
		Message: message,
	})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, dto.MessageResponse{Message: message})
}

// decodeJSON разбирает тело запроса; при ошибке сам отвечает 400
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// respondInternal логирует ошибку хранилища; клиент получает общее сообщение
func respondInternal(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("internal error", slog.Any("error", err))
	respondError(w, http.StatusInternalServerError, "internal server error", "")
}

// handleServiceError сопоставляет ошибки CRUD и отчётов со статусами
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "invalid id", "")
	case errors.Is(err, domain.ErrInvalidMonth):
		respondError(w, http.StatusBadRequest, "invalid month", err.Error())
	default:
		respondInternal(w, logger, err)
	}
}

// parseID разбирает числовой идентификатор из пути
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
