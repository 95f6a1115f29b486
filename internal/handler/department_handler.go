package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/department-dao/internal/domain"
	"github.com/department-dao/internal/dto"
	"github.com/department-dao/internal/service"
	"github.com/go-playground/validator/v10"
)

type DepartmentHandler struct {
	deptService service.DepartmentService
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		validator:   validator.New(),
		logger:      logger,
	}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	depts, err := h.deptService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.DepartmentResponse, len(depts))
	for i := range depts {
		resp[i] = h.toDepartmentResponse(&depts[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, h.toDepartmentResponse(dept))
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "validation error", err.Error())
		return
	}

	dept, err := h.deptService.Rename(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, h.toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid department id", err.Error())
		return
	}

	if err := h.deptService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *DepartmentHandler) extractID(r *http.Request) (int64, error) {
	path := strings.TrimPrefix(r.URL.Path, "/departments/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return 0, errors.New("id is required")
	}

	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}

func (h *DepartmentHandler) toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt,
	}
}

func (h *DepartmentHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound):
		h.respondError(w, http.StatusNotFound, "department not found", "")
	case errors.Is(err, domain.ErrInvalidArgument):
		h.respondError(w, http.StatusBadRequest, "invalid argument", err.Error())
	case domain.IsStoreError(err):
		h.logger.Error("store unavailable", slog.Any("error", err))
		h.respondError(w, http.StatusServiceUnavailable, "store unavailable", "")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *DepartmentHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *DepartmentHandler) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	w.WriteHeader(status)
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
