package domain

import (
	"time"
)

// Department представляет отдел организации
type Department struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Department) TableName() string {
	return "departments"
}

// Post представляет должность
type Post struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(200);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Post) TableName() string {
	return "posts"
}

// Role представляет роль сотрудника в системе
type Role struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName задаёт имя таблицы для GORM
func (Role) TableName() string {
	return "roles"
}

// Фиксированные роли, создаваемые при запуске
const (
	RoleAdminID    int64 = 1
	RoleEmployeeID int64 = 2
)

// Employee представляет сотрудника
type Employee struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Surname      string `gorm:"type:varchar(200);not null"`
	Name         string `gorm:"type:varchar(200);not null"`
	Patronymic   string `gorm:"type:varchar(200);not null"`
	Login        string `gorm:"type:varchar(200);not null"`
	Password     string `gorm:"type:varchar(200);not null"`
	IdleHours    int64  `gorm:"not null;default:0"`
	DepartmentID int64  `gorm:"not null;index"`
	PostID       int64  `gorm:"not null;index"`
	RoleID       int64  `gorm:"not null;index"`

	Department *Department `gorm:"foreignKey:DepartmentID"`
	Post       *Post       `gorm:"foreignKey:PostID"`
	Role       *Role       `gorm:"foreignKey:RoleID"`
}

// TableName задаёт имя таблицы для GORM
func (Employee) TableName() string {
	return "employees"
}

// DepartmentName возвращает название отдела или пустую строку, если отдел удалён
func (e *Employee) DepartmentName() string {
	if e.Department == nil {
		return ""
	}
	return e.Department.Name
}

// PostName возвращает название должности или пустую строку
func (e *Employee) PostName() string {
	if e.Post == nil {
		return ""
	}
	return e.Post.Name
}

// RoleName возвращает название роли или пустую строку
func (e *Employee) RoleName() string {
	if e.Role == nil {
		return ""
	}
	return e.Role.Name
}

// ActionType представляет тип действия (выходной, переработка)
type ActionType struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName задаёт имя таблицы для GORM
func (ActionType) TableName() string {
	return "action_types"
}

// Фиксированные типы действий, создаваемые при запуске
const (
	ActionTypeDayOffID   int64 = 1
	ActionTypeOvertimeID int64 = 2
)

// Action представляет корректировку часов сотрудника
type Action struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Hours        int64     `gorm:"not null"`
	Date         time.Time `gorm:"column:action_date;type:date;not null"`
	EmployeeID   int64     `gorm:"not null;index"`
	ActionTypeID int64     `gorm:"column:action_type_id;not null;index"`

	Employee   *Employee   `gorm:"foreignKey:EmployeeID"`
	ActionType *ActionType `gorm:"foreignKey:ActionTypeID"`
}

// TableName задаёт имя таблицы для GORM
func (Action) TableName() string {
	return "actions"
}

// HolidayDocument - готовая справка о выходном дне во временном файле
type HolidayDocument struct {
	Path     string
	Filename string
}
