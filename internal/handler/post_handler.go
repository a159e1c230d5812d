package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/service"
)

// PostHandler обслуживает /posts
type PostHandler struct {
	base
	postService service.PostService
}

// NewPostHandler создаёт хендлер должностей
func NewPostHandler(postService service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		base:        newBase(logger),
		postService: postService,
	}
}

// Routes регистрирует маршруты; /create и /all оставлены для совместимости со старыми клиентами
func (h *PostHandler) Routes(r chi.Router) {
	r.Post("/", h.Create)
	r.Post("/create", h.Create)
	r.Get("/", h.List)
	r.Get("/all", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.postService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toPostResponse(post))
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.PostResponse, len(posts))
	for i := range posts {
		resp[i] = toPostResponse(&posts[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	post, err := h.postService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if !h.decode(w, r, &req) {
		return
	}

	post, err := h.postService.Update(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toPostResponse(post))
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.extractID(w, r)
	if !ok {
		return
	}

	if err := h.postService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondMessage(w, "Должность успешно удалена")
}

func toPostResponse(post *domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:   post.ID,
		Name: post.Name,
	}
}
