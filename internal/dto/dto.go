package dto

import (
	"time"
)

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateDepartmentRequest - запрос на переименование подразделения
type UpdateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
