package services

import (
	"context"
	"errors"

	"UniClinic/models"
	"UniClinic/repositories"
)

type MedicalRecordService struct {
	repository *repositories.MedicalRecordRepository
}

func NewMedicalRecordService(repository *repositories.MedicalRecordRepository) *MedicalRecordService {
	return &MedicalRecordService{repository: repository}
}

func (s *MedicalRecordService) Create(ctx context.Context, record *models.MedicalRecord) error {
	if record.PatientID == 0 || record.DoctorID == 0 {
		return errors.New("patient and doctor are required")
	}
	if record.ChiefComplaint == "" {
		return errors.New("chief complaint is required")
	}
	if record.VisitDate == "" {
		return errors.New("visit date is required")
	}
	return s.repository.Create(ctx, record)
}

func (s *MedicalRecordService) Update(ctx context.Context, record *models.MedicalRecord) error {
	return s.repository.Update(ctx, record)
}

func (s *MedicalRecordService) GetByID(ctx context.Context, id uint) (*models.MedicalRecord, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *MedicalRecordService) ListByPatient(ctx context.Context, patientID int64) ([]models.MedicalRecord, error) {
	return s.repository.ListByPatient(ctx, patientID)
}

func (s *MedicalRecordService) ListByDoctor(ctx context.Context, doctorID int64) ([]models.MedicalRecord, error) {
	return s.repository.ListByDoctor(ctx, doctorID)
}

func (s *MedicalRecordService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
