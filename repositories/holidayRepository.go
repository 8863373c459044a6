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
	HolidayCacheExpiry = 24 * time.Hour

	activeHolidaysCacheKey = "active_holidays_cache"
)

type HolidayRepository struct {
	cache *cache.Cache
}

func NewHolidayRepository(cache *cache.Cache) *HolidayRepository {
	return &HolidayRepository{cache: cache}
}

func (r *HolidayRepository) Create(ctx context.Context, holiday *models.AcademicHoliday) error {
	if err := database.DB.Create(holiday).Error; err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return r.cache.Delete(ctx, activeHolidaysCacheKey)
}

func (r *HolidayRepository) Update(ctx context.Context, holiday *models.AcademicHoliday) error {
	if err := database.DB.Save(holiday).Error; err != nil {
		return fmt.Errorf("failed to update holiday: %w", err)
	}
	return r.cache.Delete(ctx, activeHolidaysCacheKey)
}

func (r *HolidayRepository) GetByID(ctx context.Context, id uint) (*models.AcademicHoliday, error) {
	var holiday models.AcademicHoliday
	err := database.DB.First(&holiday, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	return &holiday, nil
}

func (r *HolidayRepository) GetAll(ctx context.Context) ([]models.AcademicHoliday, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var holidays []models.AcademicHoliday
	err := database.DB.Order("start_date").Find(&holidays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

// ListActiveBlocking returns the active holidays that suppress booking.
// The availability check runs on every create/reschedule, so the list is
// cached.
func (r *HolidayRepository) ListActiveBlocking(ctx context.Context) ([]models.AcademicHoliday, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedHolidays, err := r.cache.Get(ctx, activeHolidaysCacheKey)
	if err == nil {
		var holidays []models.AcademicHoliday
		if err := json.Unmarshal([]byte(cachedHolidays), &holidays); err == nil {
			return holidays, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get holidays from cache: %v", err)
	}

	var holidays []models.AcademicHoliday
	err = database.DB.
		Where("active = ? AND blocks_appointments = ?", true, true).
		Order("start_date").
		Find(&holidays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active holidays: %w", err)
	}

	holidaysJSON, err := json.Marshal(holidays)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal holidays: %w", err)
	}
	if err := r.cache.Set(ctx, activeHolidaysCacheKey, holidaysJSON, HolidayCacheExpiry); err != nil {
		log.Printf("Failed to set holidays in cache: %v", err)
	}

	return holidays, nil
}

func (r *HolidayRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.AcademicHoliday{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return r.cache.Delete(ctx, activeHolidaysCacheKey)
}
