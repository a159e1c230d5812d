package domain

import "errors"

// Сущность не найдена (404)
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrActionTypeNotFound = errors.New("action type not found")
	ErrActionNotFound     = errors.New("action not found")
)

// Дубликаты при создании (409)
var (
	ErrDuplicateDepartmentName = errors.New("department with this name already exists")
	ErrDuplicatePostName       = errors.New("post with this name already exists")
)

// Ссылки на несуществующие сущности и некорректные данные (400)
var (
	ErrUnknownDepartment = errors.New("referenced department does not exist")
	ErrUnknownPost       = errors.New("referenced post does not exist")
	ErrUnknownRole       = errors.New("referenced role does not exist")
	ErrUnknownEmployee   = errors.New("referenced employee does not exist")
	ErrUnknownActionType = errors.New("referenced action type does not exist")
	ErrInvalidDate       = errors.New("invalid date format, expected YYYY-MM-DD")
)
