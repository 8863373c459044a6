package services

import (
	"context"
	"errors"

	"UniClinic/models"
	"UniClinic/repositories"
)

type PrescriptionService struct {
	repository *repositories.PrescriptionRepository
}

func NewPrescriptionService(repository *repositories.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repository: repository}
}

func (s *PrescriptionService) Create(ctx context.Context, prescription *models.Prescription) error {
	if prescription.PatientID == 0 || prescription.DoctorID == 0 {
		return errors.New("patient and doctor are required")
	}
	if prescription.MedicationName == "" || prescription.Dosage == "" {
		return errors.New("medication name and dosage are required")
	}
	if prescription.IssuedDate == "" {
		return errors.New("issued date is required")
	}
	return s.repository.Create(ctx, prescription)
}

func (s *PrescriptionService) Update(ctx context.Context, prescription *models.Prescription) error {
	return s.repository.Update(ctx, prescription)
}

func (s *PrescriptionService) GetByID(ctx context.Context, id uint) (*models.Prescription, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PrescriptionService) ListByPatient(ctx context.Context, patientID int64) ([]models.Prescription, error) {
	return s.repository.ListByPatient(ctx, patientID)
}

func (s *PrescriptionService) ListByDoctor(ctx context.Context, doctorID int64) ([]models.Prescription, error) {
	return s.repository.ListByDoctor(ctx, doctorID)
}

func (s *PrescriptionService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
