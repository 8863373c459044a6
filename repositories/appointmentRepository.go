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
	AppointmentCacheExpiry = 24 * time.Hour
)

// ErrSlotTaken is returned when a (doctor, date, time) slot already holds a
// pending appointment.
var ErrSlotTaken = errors.New("the selected slot is already booked for this doctor")

type AppointmentRepository struct {
	cache *cache.Cache
}

func NewAppointmentRepository(cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{cache: cache}
}

// Create inserts a new appointment. When a doctor is attached the write is
// serialized on a per-slot lock and refused if the slot already holds a
// pending appointment.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if !models.ValidStatus(appointment.Status) {
		return errors.New("invalid status value")
	}

	if appointment.DoctorID != nil {
		release, err := acquireLock(ctx, r.slotLockKey(*appointment.DoctorID, appointment.Date, appointment.Time))
		if err != nil {
			return err
		}
		defer release()

		taken, err := r.SlotTaken(ctx, *appointment.DoctorID, appointment.Date, appointment.Time, 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}
	}

	if err := database.DB.Create(appointment).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return r.invalidate(ctx, appointment)
}

// Update persists appointment mutations. Slot moves go through UpdateSlot.
func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	if !models.ValidStatus(appointment.Status) {
		return errors.New("invalid status value")
	}

	lockKey := fmt.Sprintf("appointment_lock:%d", appointment.ID)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	if err := database.DB.Save(appointment).Error; err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return r.invalidate(ctx, appointment)
}

// UpdateSlot persists a reschedule under the target slot's lock.
func (r *AppointmentRepository) UpdateSlot(ctx context.Context, appointment *models.Appointment) error {
	if appointment.DoctorID != nil {
		release, err := acquireLock(ctx, r.slotLockKey(*appointment.DoctorID, appointment.Date, appointment.Time))
		if err != nil {
			return err
		}
		defer release()

		taken, err := r.SlotTaken(ctx, *appointment.DoctorID, appointment.Date, appointment.Time, appointment.ID)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}
	}

	if err := database.DB.Save(appointment).Error; err != nil {
		return fmt.Errorf("failed to reschedule appointment: %w", err)
	}
	return r.invalidate(ctx, appointment)
}

// SlotTaken reports whether a pending appointment other than excludeID
// occupies the doctor's slot.
func (r *AppointmentRepository) SlotTaken(ctx context.Context, doctorID int64, date, timeSlot string, excludeID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ? AND status IN ? AND id <> ?",
			doctorID, date, timeSlot,
			[]string{models.AppointmentScheduled, models.AppointmentConfirmed}, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check slot: %w", err)
	}
	return count > 0, nil
}

// CountPending returns the patient's scheduled/confirmed appointment count.
func (r *AppointmentRepository) CountPending(ctx context.Context, patientID int64) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Appointment{}).
		Where("patient_id = ? AND status IN ?", patientID,
			[]string{models.AppointmentScheduled, models.AppointmentConfirmed}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pending appointments: %w", err)
	}
	return count, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(id)
	cachedAppointment, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cachedAppointment), &appointment); err == nil {
			return &appointment, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	err = database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, department_id")
		}).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, department_id")
		}).
		First(&appointment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	appointmentJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepository) listWhere(ctx context.Context, query string, args ...interface{}) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointments []models.Appointment
	db := database.DB.
		Preload("Patient", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, department_id")
		}).
		Preload("Doctor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, department_id")
		}).
		Order("date DESC, time DESC")
	if query != "" {
		db = db.Where(query, args...)
	}
	if err := db.Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.listWhere(ctx, "")
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	return r.listWhere(ctx, "patient_id = ?", patientID)
}

func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]models.Appointment, error) {
	return r.listWhere(ctx, "doctor_id = ?", doctorID)
}

func (r *AppointmentRepository) ListByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	return r.listWhere(ctx, "status = ?", status)
}

// ListNeedingReassignment returns cancelled-doctor appointments awaiting
// staff follow-up.
func (r *AppointmentRepository) ListNeedingReassignment(ctx context.Context) ([]models.Appointment, error) {
	return r.listWhere(ctx, "needs_reassignment = ?", true)
}

// ListUnassigned returns pending appointments booked as "any available
// doctor" that still have no doctor attached.
func (r *AppointmentRepository) ListUnassigned(ctx context.Context) ([]models.Appointment, error) {
	return r.listWhere(ctx, "doctor_id IS NULL AND status = ?", models.AppointmentScheduled)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	appointment, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return errors.New("appointment not found")
	}
	if err := database.DB.Delete(&models.Appointment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return r.invalidate(ctx, appointment)
}

func (r *AppointmentRepository) invalidate(ctx context.Context, appointment *models.Appointment) error {
	if err := r.cache.Delete(ctx, r.getAppointmentCacheKey(appointment.ID)); err != nil {
		return fmt.Errorf("failed to delete appointment cache: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) getAppointmentCacheKey(id uint) string {
	return fmt.Sprintf("appointment_cache:%d", id)
}

func (r *AppointmentRepository) slotLockKey(doctorID int64, date, timeSlot string) string {
	return fmt.Sprintf("slot_lock:%d_%s_%s", doctorID, date, timeSlot)
}
