package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"UniClinic/cache"
	"UniClinic/database"
	"UniClinic/models"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	MedicalRecordCacheExpiry = 7 * 24 * time.Hour
)

type MedicalRecordRepository struct {
	cache *cache.Cache
}

func NewMedicalRecordRepository(cache *cache.Cache) *MedicalRecordRepository {
	return &MedicalRecordRepository{cache: cache}
}

func (r *MedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) error {
	lockKey := fmt.Sprintf("medical_record_lock:%d_%s", record.PatientID, record.VisitDate)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create medical record: %w", err)
	}
	return r.invalidate(ctx, record.PatientID, record.ID)
}

func (r *MedicalRecordRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	lockKey := fmt.Sprintf("medical_record_lock:%d", record.ID)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Save(record).Error; err != nil {
		return fmt.Errorf("failed to update medical record: %w", err)
	}
	return r.invalidate(ctx, record.PatientID, record.ID)
}

func (r *MedicalRecordRepository) GetByID(ctx context.Context, id uint) (*models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getRecordCacheKey(id)
	cachedRecord, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var record models.MedicalRecord
		if err := json.Unmarshal([]byte(cachedRecord), &record); err == nil {
			return &record, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get medical record from cache: %v", err)
	}

	var record models.MedicalRecord
	err = database.DB.
		Preload("Prescriptions").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal medical record: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, recordJSON, MedicalRecordCacheExpiry); err != nil {
		log.Printf("Failed to set medical record in cache: %v", err)
	}

	return &record, nil
}

func (r *MedicalRecordRepository) ListByPatient(ctx context.Context, patientID int64) ([]models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var records []models.MedicalRecord
	err := database.DB.
		Preload("Prescriptions").
		Where("patient_id = ?", patientID).
		Order("visit_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}

func (r *MedicalRecordRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]models.MedicalRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var records []models.MedicalRecord
	err := database.DB.
		Where("doctor_id = ?", doctorID).
		Order("visit_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}
	return records, nil
}

func (r *MedicalRecordRepository) Delete(ctx context.Context, id uint) error {
	record, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return errors.New("medical record not found")
	}
	if err := database.DB.Delete(&models.MedicalRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete medical record: %w", err)
	}
	return r.invalidate(ctx, record.PatientID, id)
}

func (r *MedicalRecordRepository) invalidate(ctx context.Context, patientID int64, id uint) error {
	if err := r.cache.Delete(ctx, r.getRecordCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete medical record cache: %w", err)
	}
	return r.cache.Delete(ctx, fmt.Sprintf("patient_records_cache:%d", patientID))
}

func (r *MedicalRecordRepository) getRecordCacheKey(id uint) string {
	return fmt.Sprintf("medical_record_cache:%d", id)
}
