package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/department-dao/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestInvalidArgumentErrors(t *testing.T) {
	for _, err := range []error{domain.ErrIDAlreadySet, domain.ErrIDRequired, domain.ErrEmptyName} {
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.False(t, domain.IsStoreError(err))
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("find all: %w", &domain.StoreError{Op: "find all departments", Err: cause})

	assert.True(t, domain.IsStoreError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "store: find all departments: connection refused")
}

func TestDepartment_String(t *testing.T) {
	dept := domain.Department{ID: 4, Name: "Books"}

	assert.Equal(t, "Department[id=4, name=Books]", dept.String())
	assert.True(t, dept.HasID())
	assert.False(t, domain.Department{Name: "Music"}.HasID())
}
