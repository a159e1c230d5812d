package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/service"
)

// EmployeeHandler обслуживает /employees
type EmployeeHandler struct {
	base
	empService service.EmployeeService
}

// NewEmployeeHandler создаёт хендлер сотрудников
func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		base:       newBase(logger),
		empService: empService,
	}
}

// Routes регистрирует маршруты сотрудников
func (h *EmployeeHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Post("/create", h.Create)
	r.Get("/", h.List)
	r.Get("/all", h.List)
	r.Get("/{id}", h.GetByID)
	r.Patch("/{id}", h.Update)
	r.Put("/{id}/add-hours", h.AddHours)
	r.Delete("/{id}", h.Delete)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	emp, err := h.empService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) AddHours(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.AddHoursRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.AddHours(r.Context(), id, *req.IdleHours)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !h.decode(w, r, &req) {
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondMessage(w, "Сотрудник успешно удален")
}

// toEmployeeResponse строит денормализованное представление; пароль не отдаётся
func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:             emp.ID,
		Surname:        emp.Surname,
		Name:           emp.Name,
		Patronymic:     emp.Patronymic,
		Login:          emp.Login,
		IdleHours:      emp.IdleHours,
		DepartmentName: emp.DepartmentName(),
		RoleName:       emp.RoleName(),
		PostName:       emp.PostName(),
	}
}
