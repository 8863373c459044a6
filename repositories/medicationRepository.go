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

type MedicationRepository struct{}

func NewMedicationRepository() *MedicationRepository {
	return &MedicationRepository{}
}

func (r *MedicationRepository) Create(ctx context.Context, medication *models.Medication) error {
	if !models.ValidMedicationStatus(medication.Status) {
		return errors.New("invalid medication status")
	}
	if err := database.DB.Create(medication).Error; err != nil {
		return fmt.Errorf("failed to create medication: %w", err)
	}
	return nil
}

func (r *MedicationRepository) Update(ctx context.Context, medication *models.Medication) error {
	if !models.ValidMedicationStatus(medication.Status) {
		return errors.New("invalid medication status")
	}
	if err := database.DB.Save(medication).Error; err != nil {
		return fmt.Errorf("failed to update medication: %w", err)
	}
	return nil
}

func (r *MedicationRepository) GetByID(ctx context.Context, id uint) (*models.Medication, error) {
	var medication models.Medication
	err := database.DB.First(&medication, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}
	return &medication, nil
}

func (r *MedicationRepository) ListByPatient(ctx context.Context, patientID int64) ([]models.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var medications []models.Medication
	err := database.DB.
		Where("patient_id = ?", patientID).
		Order("start_date DESC").
		Find(&medications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return medications, nil
}

func (r *MedicationRepository) ListActiveByPatient(ctx context.Context, patientID int64) ([]models.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var medications []models.Medication
	err := database.DB.
		Where("patient_id = ? AND status = ?", patientID, models.MedicationActive).
		Order("start_date DESC").
		Find(&medications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active medications: %w", err)
	}
	return medications, nil
}

func (r *MedicationRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.Medication{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	return nil
}
