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

type PrescriptionRepository struct{}

func NewPrescriptionRepository() *PrescriptionRepository {
	return &PrescriptionRepository{}
}

func (r *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	if err := database.DB.Create(prescription).Error; err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *PrescriptionRepository) Update(ctx context.Context, prescription *models.Prescription) error {
	if err := database.DB.Save(prescription).Error; err != nil {
		return fmt.Errorf("failed to update prescription: %w", err)
	}
	return nil
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := database.DB.First(&prescription, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prescription: %w", err)
	}
	return &prescription, nil
}

func (r *PrescriptionRepository) ListByPatient(ctx context.Context, patientID int64) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescriptions []models.Prescription
	err := database.DB.
		Where("patient_id = ?", patientID).
		Order("issued_date DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (r *PrescriptionRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescriptions []models.Prescription
	err := database.DB.
		Where("doctor_id = ?", doctorID).
		Order("issued_date DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	return prescriptions, nil
}

func (r *PrescriptionRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.Prescription{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete prescription: %w", err)
	}
	return nil
}
