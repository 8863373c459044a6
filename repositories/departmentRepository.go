package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"UniClinic/database"
	"UniClinic/models"

	"gorm.io/gorm"
)

type DepartmentRepository struct{}

func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{}
}

func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	if err := database.DB.Create(department).Error; err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	if err := database.DB.Save(department).Error; err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	var department models.Department
	err := database.DB.First(&department, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &department, nil
}

func (r *DepartmentRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var departments []models.Department
	if err := database.DB.Order("name").Find(&departments).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	if err := database.DB.Delete(&models.Department{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}
