package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/department-dao/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс доступа к подразделениям
type DepartmentRepository interface {
	// FindByID возвращает found=false без ошибки, если строки с таким id нет
	FindByID(ctx context.Context, id int64) (domain.Department, bool, error)
	// FindAll возвращает все строки в порядке первичного ключа
	FindAll(ctx context.Context) ([]domain.Department, error)
	// Insert сохраняет новую строку и возвращает копию с присвоенным ID.
	// Переданное значение не изменяется.
	Insert(ctx context.Context, dept domain.Department) (domain.Department, error)
	Update(ctx context.Context, dept domain.Department) (domain.Department, error)
	DeleteByID(ctx context.Context, id int64) error
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) FindByID(ctx context.Context, id int64) (domain.Department, bool, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Department{}, false, nil
		}
		return domain.Department{}, false, storeErr("find department by id", err)
	}
	return dept, true, nil
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]domain.Department, error) {
	depts := make([]domain.Department, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error; err != nil {
		return nil, storeErr("find all departments", err)
	}
	return depts, nil
}

func (r *departmentRepository) Insert(ctx context.Context, dept domain.Department) (domain.Department, error) {
	if dept.HasID() {
		return domain.Department{}, domain.ErrIDAlreadySet
	}
	if strings.TrimSpace(dept.Name) == "" {
		return domain.Department{}, domain.ErrEmptyName
	}

	row := domain.Department{Name: dept.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Department{}, storeErr("insert department", err)
	}
	return row, nil
}

func (r *departmentRepository) Update(ctx context.Context, dept domain.Department) (domain.Department, error) {
	if !dept.HasID() {
		return domain.Department{}, domain.ErrIDRequired
	}
	if strings.TrimSpace(dept.Name) == "" {
		return domain.Department{}, domain.ErrEmptyName
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Department{}).
		Where("id = ?", dept.ID).
		Update("name", dept.Name)
	if result.Error != nil {
		return domain.Department{}, storeErr("update department", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.Department{}, domain.ErrDepartmentNotFound
	}

	updated, found, err := r.FindByID(ctx, dept.ID)
	if err != nil {
		return domain.Department{}, err
	}
	if !found {
		return domain.Department{}, domain.ErrDepartmentNotFound
	}
	return updated, nil
}

func (r *departmentRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, id)
	if result.Error != nil {
		return storeErr("delete department", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// storeErr оборачивает ошибку драйвера в domain.StoreError
func storeErr(op string, err error) error {
	return &domain.StoreError{Op: op, Err: err}
}
