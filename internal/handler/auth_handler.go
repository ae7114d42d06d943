package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/smartpark-payroll-api/internal/domain"
	"github.com/smartpark-payroll-api/internal/dto"
	"github.com/smartpark-payroll-api/internal/service"
)

// AuthHandler обслуживает /auth/*.
// Клиент читает поле message, поэтому ошибки здесь отдаются как {"message": ...}.
type AuthHandler struct {
	authService service.AuthService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Password is required")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.MessageResponse{
		Message:  "Login successful",
		Username: user.Username,
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	if err := h.authService.Register(r.Context(), req.Username, req.Password); err != nil {
		h.handleServiceError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Current username and password are required")
		return
	}

	result, err := h.authService.UpdateProfile(r.Context(), service.UpdateProfileInput{
		CurrentUsername: req.CurrentUsername,
		NewUsername:     req.Username,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	message := "Profile updated successfully"
	if !result.Changed {
		message = "No changes made"
	}
	respondJSON(w, http.StatusOK, dto.MessageResponse{
		Message:  message,
		Username: result.Username,
	})
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrPasswordRequired):
		respondMessage(w, http.StatusBadRequest, "Password is required")
	case errors.Is(err, domain.ErrUsernameTaken):
		respondMessage(w, http.StatusBadRequest, "Username already taken")
	case errors.Is(err, domain.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrIncorrectPassword):
		respondMessage(w, http.StatusUnauthorized, "Incorrect current password")
	default:
		h.logger.Error("auth request failed", slog.Any("error", err))
		respondMessage(w, http.StatusInternalServerError, "Server error")
	}
}
