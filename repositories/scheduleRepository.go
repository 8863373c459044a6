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
	ScheduleCacheExpiry = 24 * time.Hour
)

type ScheduleRepository struct {
	cache *cache.Cache
}

func NewScheduleRepository(cache *cache.Cache) *ScheduleRepository {
	return &ScheduleRepository{cache: cache}
}

// GetByUserID returns the staff member's schedule, or nil when the clinic
// defaults apply.
func (r *ScheduleRepository) GetByUserID(ctx context.Context, userID int64) (*models.StaffSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getScheduleCacheKey(userID)
	cachedSchedule, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var schedule models.StaffSchedule
		if err := json.Unmarshal([]byte(cachedSchedule), &schedule); err == nil {
			return &schedule, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get schedule from cache: %v", err)
	}

	var schedule models.StaffSchedule
	err = database.DB.First(&schedule, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	scheduleJSON, err := json.Marshal(schedule)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schedule: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, scheduleJSON, ScheduleCacheExpiry); err != nil {
		log.Printf("Failed to set schedule in cache: %v", err)
	}

	return &schedule, nil
}

// Save upserts the staff member's schedule.
func (r *ScheduleRepository) Save(ctx context.Context, schedule *models.StaffSchedule) error {
	lockKey := fmt.Sprintf("schedule_lock:%d", schedule.UserID)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	var existing models.StaffSchedule
	err = database.DB.First(&existing, "user_id = ?", schedule.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := database.DB.Create(schedule).Error; err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up schedule: %w", err)
	default:
		schedule.ID = existing.ID
		schedule.CreatedAt = existing.CreatedAt
		if err := database.DB.Save(schedule).Error; err != nil {
			return fmt.Errorf("failed to update schedule: %w", err)
		}
	}

	return r.cache.Delete(ctx, r.getScheduleCacheKey(schedule.UserID))
}

func (r *ScheduleRepository) GetAll(ctx context.Context) ([]models.StaffSchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedules []models.StaffSchedule
	err := database.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, username, email, role_id, department_id")
		}).
		Order("user_id").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, userID int64) error {
	if err := database.DB.Delete(&models.StaffSchedule{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return r.cache.Delete(ctx, r.getScheduleCacheKey(userID))
}

func (r *ScheduleRepository) getScheduleCacheKey(userID int64) string {
	return fmt.Sprintf("schedule_cache:%d", userID)
}
