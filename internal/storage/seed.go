package storage

import (
	"context"
	"fmt"

	"github.com/overtime-api/internal/domain"
	"gorm.io/gorm"
)

var defaultRoles = []domain.Role{
	{ID: domain.RoleAdminID, Name: "админ"},
	{ID: domain.RoleEmployeeID, Name: "сотрудник"},
}

var defaultActionTypes = []domain.ActionType{
	{ID: domain.ActionTypeDayOffID, Name: "Выходной"},
	{ID: domain.ActionTypeOvertimeID, Name: "Переработка"},
}

// Seed заполняет справочники ролей и типов действий.
// Повторный вызов ничего не меняет: наличие первой строки считается признаком заполненности.
func (s *Storage) Seed(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := seedIfAbsent(tx, domain.RoleAdminID, defaultRoles); err != nil {
			return fmt.Errorf("failed to seed roles: %w", err)
		}
		if err := seedIfAbsent(tx, domain.ActionTypeDayOffID, defaultActionTypes); err != nil {
			return fmt.Errorf("failed to seed action types: %w", err)
		}
		return nil
	})
}

func seedIfAbsent[T any](tx *gorm.DB, firstID int64, rows []T) error {
	var count int64
	if err := tx.Model(new(T)).Where("id = ?", firstID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
