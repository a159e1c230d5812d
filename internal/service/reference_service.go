package service

import (
	"context"
	"fmt"

	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/repository"
)

// ReferenceService отдаёт справочники ролей и типов действий
type ReferenceService interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	GetRole(ctx context.Context, id int64) (*domain.Role, error)
	ListActionTypes(ctx context.Context) ([]domain.ActionType, error)
	GetActionType(ctx context.Context, id int64) (*domain.ActionType, error)
}

type referenceService struct {
	roleRepo       repository.RoleRepository
	actionTypeRepo repository.ActionTypeRepository
}

// NewReferenceService создаёт новый экземпляр сервиса
func NewReferenceService(roleRepo repository.RoleRepository, actionTypeRepo repository.ActionTypeRepository) ReferenceService {
	return &referenceService{
		roleRepo:       roleRepo,
		actionTypeRepo: actionTypeRepo,
	}
}

func (s *referenceService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *referenceService) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}

func (s *referenceService) ListActionTypes(ctx context.Context) ([]domain.ActionType, error) {
	types, err := s.actionTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list action types: %w", err)
	}
	return types, nil
}

func (s *referenceService) GetActionType(ctx context.Context, id int64) (*domain.ActionType, error) {
	return s.actionTypeRepo.GetByID(ctx, id)
}
