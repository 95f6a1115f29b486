package domain

import (
	"errors"
	"fmt"
)

// Ошибки неверного использования API
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIDAlreadySet    = fmt.Errorf("%w: department id is already set", ErrInvalidArgument)
	ErrIDRequired      = fmt.Errorf("%w: department id is required", ErrInvalidArgument)
	ErrEmptyName       = fmt.Errorf("%w: department name must not be empty", ErrInvalidArgument)
)

// ErrDepartmentNotFound возвращается операциями изменения, когда строки нет
var ErrDepartmentNotFound = errors.New("department not found")

// StoreError описывает сбой на границе с хранилищем: соединение, запрос
// или нарушение ограничения.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError проверяет, есть ли StoreError в цепочке ошибок
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
