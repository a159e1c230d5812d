package repository

import (
	"context"
	"errors"

	"github.com/overtime-api/internal/domain"
	"gorm.io/gorm"
)

// RoleRepository предоставляет доступ к справочнику ролей только на чтение
type RoleRepository interface {
	List(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64) (*domain.Role, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// ActionTypeRepository предоставляет доступ к справочнику типов действий только на чтение
type ActionTypeRepository interface {
	List(ctx context.Context) ([]domain.ActionType, error)
	GetByID(ctx context.Context, id int64) (*domain.ActionType, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository создаёт новый экземпляр репозитория
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List(ctx context.Context) ([]domain.Role, error) {
	var roles []domain.Role
	err := conn(ctx, r.db).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *roleRepository) GetByID(ctx context.Context, id int64) (*domain.Role, error) {
	var role domain.Role
	if err := conn(ctx, r.db).First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Role{}, id)
}

type actionTypeRepository struct {
	db *gorm.DB
}

// NewActionTypeRepository создаёт новый экземпляр репозитория
func NewActionTypeRepository(db *gorm.DB) ActionTypeRepository {
	return &actionTypeRepository{db: db}
}

func (r *actionTypeRepository) List(ctx context.Context) ([]domain.ActionType, error) {
	var types []domain.ActionType
	err := conn(ctx, r.db).Order("id ASC").Find(&types).Error
	return types, err
}

func (r *actionTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ActionType, error) {
	var at domain.ActionType
	if err := conn(ctx, r.db).First(&at, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActionTypeNotFound
		}
		return nil, err
	}
	return &at, nil
}

func (r *actionTypeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.ActionType{}, id)
}
