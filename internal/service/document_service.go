package service

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
)

// Форматы дат в документах
const (
	DocumentDateLayout = "02.01.2006"
	fileStampLayout    = "20060102150405"
)

//go:embed templates/holiday.html
var holidayTemplateSource string

var holidayTemplate = template.Must(template.New("holiday").Parse(holidayTemplateSource))

type holidayData struct {
	Surname     string
	Name        string
	Patronymic  string
	HolidayDate string
	IssueDate   string
}

// DocumentService формирует документы по шаблонам
type DocumentService interface {
	GenerateHoliday(ctx context.Context, req *dto.HolidayDocumentRequest) (*domain.HolidayDocument, error)
}

// DocumentOption настраивает DocumentService
type DocumentOption func(*documentService)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) DocumentOption {
	return func(s *documentService) {
		s.now = now
	}
}

type documentService struct {
	tempDir string
	now     func() time.Time
}

// NewDocumentService создаёт сервис; пустой tempDir означает системную временную директорию
func NewDocumentService(tempDir string, opts ...DocumentOption) DocumentService {
	s := &documentService{
		tempDir: tempDir,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateHoliday записывает справку о выходном дне во временный файл.
// Файл принадлежит вызывающему и должен быть удалён после отправки.
func (s *documentService) GenerateHoliday(ctx context.Context, req *dto.HolidayDocumentRequest) (*domain.HolidayDocument, error) {
	holiday, err := parseDate(req.HolidayDate)
	if err != nil {
		return nil, err
	}

	now := s.now()

	var buf bytes.Buffer
	err = holidayTemplate.Execute(&buf, holidayData{
		Surname:     req.Surname,
		Name:        req.Name,
		Patronymic:  req.Patronymic,
		HolidayDate: holiday.Format(DocumentDateLayout),
		IssueDate:   now.Format(DocumentDateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("render holiday document: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.writeTemp(buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &domain.HolidayDocument{
		Path:     path,
		Filename: "holiday_document_" + now.Format(fileStampLayout) + ".doc",
	}, nil
}

// writeTemp пишет содержимое во временный файл и удаляет его при любой ошибке
func (s *documentService) writeTemp(content []byte) (path string, err error) {
	f, err := os.CreateTemp(s.tempDir, "holiday_*.doc")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(content); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return f.Name(), nil
}
