package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/service"
)

// Документ - HTML, который Word открывает по расширению .doc
const msWordContentType = "application/msword"

// DocumentHandler обслуживает /documents
type DocumentHandler struct {
	base
	docService service.DocumentService
}

// NewDocumentHandler создаёт хендлер документов
func NewDocumentHandler(docService service.DocumentService, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		base:       newBase(logger),
		docService: docService,
	}
}

// Routes регистрирует маршруты документов
func (h *DocumentHandler) Routes(r chi.Router) {
	r.Post("/holiday", h.Holiday)
}

// Holiday формирует справку о выходном дне и отдаёт её как вложение.
// Временный файл удаляется после отправки.
func (h *DocumentHandler) Holiday(w http.ResponseWriter, r *http.Request) {
	var req dto.HolidayDocumentRequest
	if !h.decode(w, r, &req) {
		return
	}

	doc, err := h.docService.GenerateHoliday(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	defer func() {
		if err := os.Remove(doc.Path); err != nil && !os.IsNotExist(err) {
			h.logger.Warn("failed to remove temp document", slog.String("path", doc.Path), slog.Any("error", err))
		}
	}()

	f, err := os.Open(doc.Path)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", msWordContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, f); err != nil {
		h.logger.Error("failed to send document", slog.Any("error", err))
	}
}
