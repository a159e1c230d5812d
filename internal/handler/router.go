package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/middleware"
)

// Handlers - набор хендлеров всех ресурсов API
type Handlers struct {
	Departments *DepartmentHandler
	Posts       *PostHandler
	Employees   *EmployeeHandler
	Actions     *ActionHandler
	References  *ReferenceHandler
	Documents   *DocumentHandler
}

// Router настраивает маршруты API
type Router struct {
	base
	handlers        Handlers
	rateLimitPerMin int
}

// NewRouter создаёт новый роутер; rateLimitPerMin = 0 отключает ограничение частоты
func NewRouter(handlers Handlers, rateLimitPerMin int, logger *slog.Logger) *Router {
	return &Router{
		base:            newBase(logger),
		handlers:        handlers,
		rateLimitPerMin: rateLimitPerMin,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	mux := chi.NewRouter()

	mux.Use(
		chimw.RequestID,
		chimw.RealIP,
		middleware.Logger(r.logger),
		middleware.Recoverer(r.logger),
		middleware.Secure(r.logger),
		middleware.RateLimit(r.rateLimitPerMin),
		middleware.ContentType,
	)

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		r.respondError(w, http.StatusNotFound, "Ресурс не найден", "")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		r.respondError(w, http.StatusMethodNotAllowed, "Метод не поддерживается", "")
	})

	mux.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		r.respondMessage(w, "API для учета переработок сотрудников")
	})

	// Health check
	mux.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		r.respondJSON(w, http.StatusOK, dto.StatusResponse{Status: "работает"})
	})

	mux.Route("/otdels", r.handlers.Departments.Routes)
	mux.Route("/posts", r.handlers.Posts.Routes)
	mux.Route("/employees", r.handlers.Employees.Routes)
	mux.Route("/actions", r.handlers.Actions.Routes)
	mux.Route("/roles", r.handlers.References.RoleRoutes)
	mux.Route("/actiontypes", r.handlers.References.ActionTypeRoutes)
	mux.Route("/documents", r.handlers.Documents.Routes)

	return mux
}
