package service

import (
	"context"
	"strings"

	"github.com/department-dao/internal/domain"
	"github.com/department-dao/internal/dto"
	"github.com/department-dao/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error)
	Rename(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{deptRepo: deptRepo}
}

// GetByID возвращает ErrDepartmentNotFound, если подразделения нет
func (s *departmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	dept, found, err := s.deptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrDepartmentNotFound
	}
	return &dept, nil
}

func (s *departmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.FindAll(ctx)
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*domain.Department, error) {
	dept, err := s.deptRepo.Insert(ctx, domain.Department{Name: strings.TrimSpace(req.Name)})
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (s *departmentService) Rename(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*domain.Department, error) {
	dept, err := s.deptRepo.Update(ctx, domain.Department{ID: id, Name: strings.TrimSpace(req.Name)})
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (s *departmentService) Delete(ctx context.Context, id int64) error {
	return s.deptRepo.DeleteByID(ctx, id)
}
