package services

import (
	"context"
	"fmt"

	"UniClinic/models"
	"UniClinic/repositories"
	"UniClinic/utils"
)

type ProfileService struct {
	repository *repositories.ProfileRepository
}

func NewProfileService(repository *repositories.ProfileRepository) *ProfileService {
	return &ProfileService{repository: repository}
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	return s.repository.GetByUserID(ctx, userID)
}

// Save validates and upserts the caller's medical card.
func (s *ProfileService) Save(ctx context.Context, profile *models.Profile) error {
	if err := utils.ValidateProfileData(*profile); err != nil {
		return fmt.Errorf("invalid profile data: %w", err)
	}
	return s.repository.Save(ctx, profile)
}

// Completeness reports whether the booking gate passes and which required
// fields are still missing.
func (s *ProfileService) Completeness(ctx context.Context, userID int64) (bool, []string, error) {
	profile, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	if profile == nil {
		empty := models.Profile{}
		return false, empty.MissingFields(), nil
	}
	return profile.IsComplete(), profile.MissingFields(), nil
}

func (s *ProfileService) Delete(ctx context.Context, userID int64) error {
	return s.repository.Delete(ctx, userID)
}
