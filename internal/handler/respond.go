package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
)

// errorMapping сопоставляет бизнес-ошибку статусу и сообщению для клиента
type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{domain.ErrDepartmentNotFound, http.StatusNotFound, "Отдел не найден"},
	{domain.ErrPostNotFound, http.StatusNotFound, "Должность не найдена"},
	{domain.ErrRoleNotFound, http.StatusNotFound, "Роль не найдена"},
	{domain.ErrActionTypeNotFound, http.StatusNotFound, "Тип действия не найден"},
	{domain.ErrEmployeeNotFound, http.StatusNotFound, "Сотрудник не найден"},
	{domain.ErrActionNotFound, http.StatusNotFound, "Действие не найдено"},

	{domain.ErrDuplicateDepartmentName, http.StatusConflict, "Отдел с таким названием уже существует"},
	{domain.ErrDuplicatePostName, http.StatusConflict, "Такая должность уже существует"},

	{domain.ErrUnknownDepartment, http.StatusBadRequest, "Отдела с таким id не существует"},
	{domain.ErrUnknownPost, http.StatusBadRequest, "Должности с таким id не существует"},
	{domain.ErrUnknownRole, http.StatusBadRequest, "Роли с таким id не существует"},
	{domain.ErrUnknownEmployee, http.StatusBadRequest, "Сотрудника с таким id не существует"},
	{domain.ErrUnknownActionType, http.StatusBadRequest, "Типа действия с таким id не существует"},
	{domain.ErrInvalidDate, http.StatusBadRequest, "Неверный формат даты, ожидается ГГГГ-ММ-ДД"},
}

// base содержит общие для всех хендлеров зависимости и вспомогательные методы
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	return base{
		validator: validator.New(),
		logger:    logger,
	}
}

// decode разбирает JSON тело и валидирует его; при ошибке ответ уже отправлен
func (b *base) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		b.respondError(w, http.StatusBadRequest, "Некорректное тело запроса", err.Error())
		return false
	}

	if err := b.validator.Struct(dst); err != nil {
		b.respondError(w, http.StatusBadRequest, "Ошибка валидации", err.Error())
		return false
	}

	return true
}

// extractID читает {id} из пути; при ошибке ответ уже отправлен
func (b *base) extractID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		b.respondError(w, http.StatusBadRequest, "Некорректный id", chi.URLParam(r, "id"))
		return 0, false
	}
	return id, true
}

func (b *base) handleServiceError(w http.ResponseWriter, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			details := ""
			if m.err == domain.ErrInvalidDate {
				details = err.Error()
			}
			b.respondError(w, m.status, m.message, details)
			return
		}
	}

	b.logger.Error("internal error", slog.Any("error", err))
	b.respondError(w, http.StatusInternalServerError, "Внутренняя ошибка сервера", err.Error())
}

func (b *base) respondMessage(w http.ResponseWriter, message string) {
	b.respondJSON(w, http.StatusOK, dto.MessageResponse{Message: message})
}

func (b *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		b.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (b *base) respondError(w http.ResponseWriter, status int, errMsg, details string) {
	resp := dto.ErrorResponse{Error: errMsg}
	if details != "" {
		resp.Message = details
	}
	b.respondJSON(w, status, resp)
}
