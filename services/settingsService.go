package services

import (
	"context"
	"fmt"

	"UniClinic/models"
	"UniClinic/repositories"
	"UniClinic/utils"
)

type SettingsService struct {
	repository *repositories.SettingsRepository
}

func NewSettingsService(repository *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{repository: repository}
}

func (s *SettingsService) GetSection(ctx context.Context, section string) (*models.SystemSetting, error) {
	return s.repository.GetSection(ctx, section)
}

func (s *SettingsService) UpdateSection(ctx context.Context, section, value string, updatedBy int64) (*models.SystemSetting, error) {
	return s.repository.UpdateSection(ctx, section, value, updatedBy)
}

func (s *SettingsService) GetAllSections(ctx context.Context) ([]models.SystemSetting, error) {
	return s.repository.GetAllSections(ctx)
}

func (s *SettingsService) GetClinicSettings(ctx context.Context) (*models.ClinicSettings, error) {
	return s.repository.GetClinicSettings(ctx)
}

func (s *SettingsService) UpdateClinicSettings(ctx context.Context, settings *models.ClinicSettings) error {
	if err := utils.ValidateClinicSettingsData(*settings); err != nil {
		return fmt.Errorf("invalid clinic settings: %w", err)
	}
	return s.repository.UpdateClinicSettings(ctx, settings)
}
