package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/service"
)

// ReferenceHandler отдаёт справочники /roles и /actiontypes только на чтение
type ReferenceHandler struct {
	base
	refService service.ReferenceService
}

// NewReferenceHandler создаёт хендлер справочников
func NewReferenceHandler(refService service.ReferenceService, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		base:       newBase(logger),
		refService: refService,
	}
}

// RoleRoutes регистрирует маршруты ролей
func (h *ReferenceHandler) RoleRoutes(r chi.Router) {
	r.Get("/", h.ListRoles)
	r.Get("/all", h.ListRoles)
	r.Get("/{id}", h.GetRole)
}

// ActionTypeRoutes регистрирует маршруты типов действий
func (h *ReferenceHandler) ActionTypeRoutes(r chi.Router) {
	r.Get("/", h.ListActionTypes)
	r.Get("/all", h.ListActionTypes)
	r.Get("/{id}", h.GetActionType)
}

func (h *ReferenceHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.refService.ListRoles(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.RoleResponse, len(roles))
	for i, role := range roles {
		resp[i] = dto.RoleResponse{ID: role.ID, Name: role.Name}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ReferenceHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	role, err := h.refService.GetRole(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.RoleResponse{ID: role.ID, Name: role.Name})
}

func (h *ReferenceHandler) ListActionTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.refService.ListActionTypes(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.ActionTypeResponse, len(types))
	for i, at := range types {
		resp[i] = dto.ActionTypeResponse{ID: at.ID, Name: at.Name}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *ReferenceHandler) GetActionType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	at, err := h.refService.GetActionType(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ActionTypeResponse{ID: at.ID, Name: at.Name})
}
