package services

import (
	"context"
	"fmt"

	"UniClinic/models"
	"UniClinic/repositories"
	"UniClinic/utils"
)

type ScheduleService struct {
	repository *repositories.ScheduleRepository
}

func NewScheduleService(repository *repositories.ScheduleRepository) *ScheduleService {
	return &ScheduleService{repository: repository}
}

func (s *ScheduleService) GetByUserID(ctx context.Context, userID int64) (*models.StaffSchedule, error) {
	return s.repository.GetByUserID(ctx, userID)
}

func (s *ScheduleService) Save(ctx context.Context, schedule *models.StaffSchedule) error {
	if err := utils.ValidateScheduleData(*schedule); err != nil {
		return fmt.Errorf("invalid schedule data: %w", err)
	}
	return s.repository.Save(ctx, schedule)
}

func (s *ScheduleService) GetAll(ctx context.Context) ([]models.StaffSchedule, error) {
	return s.repository.GetAll(ctx)
}

func (s *ScheduleService) Delete(ctx context.Context, userID int64) error {
	return s.repository.Delete(ctx, userID)
}
