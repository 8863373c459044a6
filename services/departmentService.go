package services

import (
	"context"

	"UniClinic/models"
	"UniClinic/repositories"
)

type DepartmentService struct {
	repository *repositories.DepartmentRepository
}

func NewDepartmentService(repository *repositories.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repository: repository}
}

func (s *DepartmentService) Create(ctx context.Context, department *models.Department) error {
	return s.repository.Create(ctx, department)
}

func (s *DepartmentService) Update(ctx context.Context, department *models.Department) error {
	return s.repository.Update(ctx, department)
}

func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *DepartmentService) GetAll(ctx context.Context) ([]models.Department, error) {
	return s.repository.GetAll(ctx)
}

func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
