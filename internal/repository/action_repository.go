package repository

import (
	"context"
	"errors"

	"github.com/overtime-api/internal/domain"
	"gorm.io/gorm"
)

// ActionRepository определяет интерфейс для работы с действиями
type ActionRepository interface {
	Create(ctx context.Context, action *domain.Action) error
	List(ctx context.Context) ([]domain.Action, error)
	GetByID(ctx context.Context, id int64) (*domain.Action, error)
	Delete(ctx context.Context, id int64) error
}

type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository создаёт новый экземпляр репозитория
func NewActionRepository(db *gorm.DB) ActionRepository {
	return &actionRepository{db: db}
}

func (r *actionRepository) Create(ctx context.Context, action *domain.Action) error {
	return conn(ctx, r.db).Omit("Employee", "ActionType").Create(action).Error
}

func (r *actionRepository) List(ctx context.Context) ([]domain.Action, error) {
	var actions []domain.Action
	err := conn(ctx, r.db).Order("id ASC").Find(&actions).Error
	return actions, err
}

func (r *actionRepository) GetByID(ctx context.Context, id int64) (*domain.Action, error) {
	var action domain.Action
	if err := conn(ctx, r.db).First(&action, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActionNotFound
		}
		return nil, err
	}
	return &action, nil
}

func (r *actionRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&domain.Action{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrActionNotFound
	}
	return nil
}
