package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для отделов
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	tx       repository.Transactor
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(tx repository.Transactor, deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{
		tx:       tx,
		deptRepo: deptRepo,
	}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	dept := &domain.Department{Name: strings.TrimSpace(req.Name)}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		// Уникальность имени проверяется только при создании
		exists, err := s.deptRepo.ExistsByName(ctx, dept.Name)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateDepartmentName
		}
		return s.deptRepo.Create(ctx, dept)
	})
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}

	return dept, nil
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.deptRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return depts, nil
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.GetByID(ctx, id)
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	var dept *domain.Department

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		dept, err = s.deptRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		dept.Name = strings.TrimSpace(req.Name)
		return s.deptRepo.Update(ctx, dept)
	})
	if err != nil {
		return nil, fmt.Errorf("update department %d: %w", id, err)
	}

	return dept, nil
}

// Delete удаляет отдел, даже если на него ссылаются сотрудники
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if err := s.deptRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete department %d: %w", id, err)
	}
	return nil
}
