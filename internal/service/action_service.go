package service

import (
	"context"
	"fmt"
	"time"

	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/repository"
)

// DateLayout - формат дат во входящих запросах
const DateLayout = "2006-01-02"

// ActionService определяет интерфейс бизнес-логики для действий
type ActionService interface {
	Create(ctx context.Context, req *dto.CreateActionRequest) (*domain.Action, error)
	List(ctx context.Context) ([]domain.Action, error)
	GetByID(ctx context.Context, id int64) (*domain.Action, error)
	Delete(ctx context.Context, id int64) error
}

type actionService struct {
	tx             repository.Transactor
	actionRepo     repository.ActionRepository
	empRepo        repository.EmployeeRepository
	actionTypeRepo repository.ActionTypeRepository
}

// NewActionService создаёт новый экземпляр сервиса
func NewActionService(
	tx repository.Transactor,
	actionRepo repository.ActionRepository,
	empRepo repository.EmployeeRepository,
	actionTypeRepo repository.ActionTypeRepository,
) ActionService {
	return &actionService{
		tx:             tx,
		actionRepo:     actionRepo,
		empRepo:        empRepo,
		actionTypeRepo: actionTypeRepo,
	}
}

// Create записывает действие и в той же транзакции увеличивает idle_hours сотрудника на req.Hours
func (s *actionService) Create(ctx context.Context, req *dto.CreateActionRequest) (*domain.Action, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	action := &domain.Action{
		Hours:        req.Hours,
		Date:         date,
		EmployeeID:   req.EmployeeID,
		ActionTypeID: req.ActionTypeID,
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.empRepo.Exists(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUnknownEmployee
		}

		ok, err = s.actionTypeRepo.Exists(ctx, req.ActionTypeID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUnknownActionType
		}

		if err := s.actionRepo.Create(ctx, action); err != nil {
			return err
		}
		return s.empRepo.AddHours(ctx, req.EmployeeID, req.Hours)
	})
	if err != nil {
		return nil, fmt.Errorf("create action: %w", err)
	}

	return action, nil
}

func (s *actionService) List(ctx context.Context) ([]domain.Action, error) {
	actions, err := s.actionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	return actions, nil
}

func (s *actionService) GetByID(ctx context.Context, id int64) (*domain.Action, error) {
	return s.actionRepo.GetByID(ctx, id)
}

// Delete удаляет только запись действия: начисленные ранее idle_hours не откатываются
func (s *actionService) Delete(ctx context.Context, id int64) error {
	if err := s.actionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete action %d: %w", id, err)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, value)
	}
	return date, nil
}
