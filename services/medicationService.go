package services

import (
	"context"
	"errors"

	"UniClinic/models"
	"UniClinic/repositories"
)

type MedicationService struct {
	repository *repositories.MedicationRepository
}

func NewMedicationService(repository *repositories.MedicationRepository) *MedicationService {
	return &MedicationService{repository: repository}
}

func (s *MedicationService) Create(ctx context.Context, medication *models.Medication) error {
	if medication.PatientID == 0 {
		return errors.New("patient is required")
	}
	if medication.Name == "" {
		return errors.New("medication name is required")
	}
	if medication.StartDate == "" {
		return errors.New("start date is required")
	}
	if medication.Status == "" {
		medication.Status = models.MedicationActive
	}
	return s.repository.Create(ctx, medication)
}

func (s *MedicationService) Update(ctx context.Context, medication *models.Medication) error {
	return s.repository.Update(ctx, medication)
}

// UpdateStatus moves a medication between active, discontinued and completed.
func (s *MedicationService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Medication, error) {
	if !models.ValidMedicationStatus(status) {
		return nil, errors.New("invalid medication status")
	}
	medication, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if medication == nil {
		return nil, errors.New("medication not found")
	}
	medication.Status = status
	if err := s.repository.Update(ctx, medication); err != nil {
		return nil, err
	}
	return medication, nil
}

func (s *MedicationService) GetByID(ctx context.Context, id uint) (*models.Medication, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *MedicationService) ListByPatient(ctx context.Context, patientID int64) ([]models.Medication, error) {
	return s.repository.ListByPatient(ctx, patientID)
}

func (s *MedicationService) ListActiveByPatient(ctx context.Context, patientID int64) ([]models.Medication, error) {
	return s.repository.ListActiveByPatient(ctx, patientID)
}

func (s *MedicationService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
