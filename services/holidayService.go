package services

import (
	"context"
	"fmt"

	"UniClinic/models"
	"UniClinic/repositories"
	"UniClinic/utils"
)

type HolidayService struct {
	repository *repositories.HolidayRepository
}

func NewHolidayService(repository *repositories.HolidayRepository) *HolidayService {
	return &HolidayService{repository: repository}
}

func (s *HolidayService) Create(ctx context.Context, holiday *models.AcademicHoliday) error {
	if err := utils.ValidateHolidayData(*holiday); err != nil {
		return fmt.Errorf("invalid holiday data: %w", err)
	}
	return s.repository.Create(ctx, holiday)
}

func (s *HolidayService) Update(ctx context.Context, holiday *models.AcademicHoliday) error {
	if err := utils.ValidateHolidayData(*holiday); err != nil {
		return fmt.Errorf("invalid holiday data: %w", err)
	}
	return s.repository.Update(ctx, holiday)
}

func (s *HolidayService) GetByID(ctx context.Context, id uint) (*models.AcademicHoliday, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *HolidayService) GetAll(ctx context.Context) ([]models.AcademicHoliday, error) {
	return s.repository.GetAll(ctx)
}

func (s *HolidayService) ListActiveBlocking(ctx context.Context) ([]models.AcademicHoliday, error) {
	return s.repository.ListActiveBlocking(ctx)
}

func (s *HolidayService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
