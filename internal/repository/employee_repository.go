package repository

import (
	"context"
	"errors"

	"github.com/overtime-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
	AddHours(ctx context.Context, id int64, delta int64) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// withRelations подгружает отдел, должность и роль для денормализованного представления
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Department").Preload("Post").Preload("Role")
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return conn(ctx, r.db).Create(emp).Error
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := conn(ctx, r.db).
		Scopes(withRelations).
		Order("id ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := conn(ctx, r.db).Scopes(withRelations).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return conn(ctx, r.db).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// AddHours атомарно увеличивает счётчик idle_hours на стороне БД
func (r *employeeRepository) AddHours(ctx context.Context, id int64, delta int64) error {
	result := conn(ctx, r.db).
		Model(&domain.Employee{}).
		Where("id = ?", id).
		UpdateColumn("idle_hours", gorm.Expr("idle_hours + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, r.db).Delete(&domain.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return exists(ctx, r.db, &domain.Employee{}, id)
}
