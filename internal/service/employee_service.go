package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/overtime-api/internal/domain"
	"github.com/overtime-api/internal/dto"
	"github.com/overtime-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	AddHours(ctx context.Context, id int64, delta int64) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type employeeService struct {
	tx       repository.Transactor
	empRepo  repository.EmployeeRepository
	deptRepo repository.DepartmentRepository
	postRepo repository.PostRepository
	roleRepo repository.RoleRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(
	tx repository.Transactor,
	empRepo repository.EmployeeRepository,
	deptRepo repository.DepartmentRepository,
	postRepo repository.PostRepository,
	roleRepo repository.RoleRepository,
) EmployeeService {
	return &employeeService{
		tx:       tx,
		empRepo:  empRepo,
		deptRepo: deptRepo,
		postRepo: postRepo,
		roleRepo: roleRepo,
	}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*domain.Employee, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var emp *domain.Employee
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, &req.DepartmentID, &req.PostID, &req.RoleID); err != nil {
			return err
		}

		created := &domain.Employee{
			Surname:      strings.TrimSpace(req.Surname),
			Name:         strings.TrimSpace(req.Name),
			Patronymic:   strings.TrimSpace(req.Patronymic),
			Login:        strings.TrimSpace(req.Login),
			Password:     hash,
			DepartmentID: req.DepartmentID,
			PostID:       req.PostID,
			RoleID:       req.RoleID,
		}
		if err := s.empRepo.Create(ctx, created); err != nil {
			return err
		}

		found, err := s.empRepo.GetByID(ctx, created.ID)
		if err != nil {
			return err
		}
		emp = found
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	return emp, nil
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.empRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.GetByID(ctx, id)
}

// AddHours прибавляет delta к idle_hours; отрицательное значение уменьшает счётчик
func (s *employeeService) AddHours(ctx context.Context, id int64, delta int64) (*domain.Employee, error) {
	if err := s.empRepo.AddHours(ctx, id, delta); err != nil {
		return nil, fmt.Errorf("add hours to employee %d: %w", id, err)
	}
	return s.empRepo.GetByID(ctx, id)
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	fields := map[string]any{}
	setString(fields, "surname", req.Surname)
	setString(fields, "name", req.Name)
	setString(fields, "patronymic", req.Patronymic)
	setString(fields, "login", req.Login)
	if req.DepartmentID != nil {
		fields["department_id"] = *req.DepartmentID
	}
	if req.PostID != nil {
		fields["post_id"] = *req.PostID
	}
	if req.RoleID != nil {
		fields["role_id"] = *req.RoleID
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	var emp *domain.Employee
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.empRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrEmployeeNotFound
		}

		if err := s.checkReferences(ctx, req.DepartmentID, req.PostID, req.RoleID); err != nil {
			return err
		}

		if err := s.empRepo.Update(ctx, id, fields); err != nil {
			return err
		}

		emp, err = s.empRepo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update employee %d: %w", id, err)
	}

	return emp, nil
}

// Delete удаляет сотрудника, связанные действия остаются
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	if err := s.empRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	return nil
}

// checkReferences проверяет существование переданных отдела, должности и роли; nil пропускается
func (s *employeeService) checkReferences(ctx context.Context, deptID, postID, roleID *int64) error {
	checks := []struct {
		id     *int64
		exists func(context.Context, int64) (bool, error)
		err    error
	}{
		{deptID, s.deptRepo.Exists, domain.ErrUnknownDepartment},
		{postID, s.postRepo.Exists, domain.ErrUnknownPost},
		{roleID, s.roleRepo.Exists, domain.ErrUnknownRole},
	}

	for _, c := range checks {
		if c.id == nil {
			continue
		}
		ok, err := c.exists(ctx, *c.id)
		if err != nil {
			return err
		}
		if !ok {
			return c.err
		}
	}
	return nil
}

func setString(fields map[string]any, column string, value *string) {
	if value != nil {
		fields[column] = strings.TrimSpace(*value)
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
