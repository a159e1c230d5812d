package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/service"
)

// ActionHandler обслуживает /actions; изменение действий не предусмотрено
type ActionHandler struct {
	base
	actionService service.ActionService
}

// NewActionHandler создаёт хендлер действий
func NewActionHandler(actionService service.ActionService, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{
		base:          newBase(logger),
		actionService: actionService,
	}
}

// Routes регистрирует маршруты действий
func (h *ActionHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Post("/create", h.Create)
	r.Get("/", h.List)
	r.Get("/all", h.List)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)
}

func (h *ActionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateActionRequest
	if !h.decode(w, r, &req) {
		return
	}

	action, err := h.actionService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toActionResponse(action))
}

func (h *ActionHandler) List(w http.ResponseWriter, r *http.Request) {
	actions, err := h.actionService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.ActionResponse, len(actions))
	for i := range actions {
		resp[i] = toActionResponse(&actions[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ActionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	action, err := h.actionService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toActionResponse(action))
}

func (h *ActionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.actionService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondMessage(w, "Действие успешно удалено")
}

func toActionResponse(action *domain.Action) dto.ActionResponse {
	return dto.ActionResponse{
		ID:           action.ID,
		Hours:        action.Hours,
		Date:         action.Date.Format(service.DateLayout),
		EmployeeID:   action.EmployeeID,
		ActionTypeID: action.ActionTypeID,
	}
}
