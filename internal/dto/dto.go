package dto

// CreateDepartmentRequest - запрос на создание или переименование отдела
type CreateDepartmentRequest struct {
	Name string `json:"name_otdel" validate:"required,min=1,max=200"`
}

// DepartmentResponse - ответ с данными отдела
type DepartmentResponse struct {
	ID   int64  `json:"otdel_id"`
	Name string `json:"name_otdel"`
}

// CreatePostRequest - запрос на создание или переименование должности
type CreatePostRequest struct {
	Name string `json:"name_post" validate:"required,min=1,max=200"`
}

// PostResponse - ответ с данными должности
type PostResponse struct {
	ID   int64  `json:"post_id"`
	Name string `json:"name_post"`
}

// RoleResponse - ответ с данными роли
type RoleResponse struct {
	ID   int64  `json:"role_id"`
	Name string `json:"name_role"`
}

// ActionTypeResponse - ответ с данными типа действия
type ActionTypeResponse struct {
	ID   int64  `json:"actiontype_id"`
	Name string `json:"name_type"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Surname      string `json:"surname" validate:"required,max=200"`
	Name         string `json:"name" validate:"required,max=200"`
	Patronymic   string `json:"patronymic" validate:"required,max=200"`
	Login        string `json:"login" validate:"required,max=200"`
	Password     string `json:"password" validate:"required,max=72"`
	DepartmentID int64  `json:"otdel_id" validate:"required,min=1"`
	PostID       int64  `json:"post_id" validate:"required,min=1"`
	RoleID       int64  `json:"role_id" validate:"required,min=1"`
}

// UpdateEmployeeRequest - запрос на частичное обновление сотрудника
type UpdateEmployeeRequest struct {
	Surname      *string `json:"surname" validate:"omitempty,max=200"`
	Name         *string `json:"name" validate:"omitempty,max=200"`
	Patronymic   *string `json:"patronymic" validate:"omitempty,max=200"`
	Login        *string `json:"login" validate:"omitempty,max=200"`
	Password     *string `json:"password" validate:"omitempty,min=1,max=72"`
	DepartmentID *int64  `json:"otdel_id" validate:"omitempty,min=1"`
	PostID       *int64  `json:"post_id" validate:"omitempty,min=1"`
	RoleID       *int64  `json:"role_id" validate:"omitempty,min=1"`
}

// AddHoursRequest - запрос на изменение счётчика часов; знак не ограничен
type AddHoursRequest struct {
	IdleHours *int64 `json:"idle_hours" validate:"required"`
}

// EmployeeResponse - денормализованное представление сотрудника
type EmployeeResponse struct {
	ID             int64  `json:"employee_id"`
	Surname        string `json:"surname"`
	Name           string `json:"name"`
	Patronymic     string `json:"patronymic"`
	Login          string `json:"login"`
	IdleHours      int64  `json:"idle_hours"`
	DepartmentName string `json:"name_otdel"`
	RoleName       string `json:"name_role"`
	PostName       string `json:"name_post"`
}

// CreateActionRequest - запрос на создание действия
type CreateActionRequest struct {
	Hours        int64  `json:"hours"`
	Date         string `json:"date_action" validate:"required"`
	EmployeeID   int64  `json:"employee_id" validate:"required,min=1"`
	ActionTypeID int64  `json:"actiontype_id" validate:"required,min=1"`
}

// ActionResponse - ответ с данными действия
type ActionResponse struct {
	ID           int64  `json:"action_id"`
	Hours        int64  `json:"hours"`
	Date         string `json:"date_action"`
	EmployeeID   int64  `json:"employee_id"`
	ActionTypeID int64  `json:"actiontype_id"`
}

// HolidayDocumentRequest - запрос на формирование справки о выходном дне
type HolidayDocumentRequest struct {
	Surname     string `json:"surname" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Patronymic  string `json:"patronymic" validate:"required"`
	HolidayDate string `json:"holiday_date" validate:"required"`
}

// MessageResponse - ответ с текстовым сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse - ответ проверки работоспособности
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
