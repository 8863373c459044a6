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
	ProfileCacheExpiry = 7 * 24 * time.Hour
)

type ProfileRepository struct {
	cache *cache.Cache
}

func NewProfileRepository(cache *cache.Cache) *ProfileRepository {
	return &ProfileRepository{cache: cache}
}

// GetByUserID returns the user's profile, or nil when none has been saved yet.
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getProfileCacheKey(userID)
	cachedProfile, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var profile models.Profile
		if err := json.Unmarshal([]byte(cachedProfile), &profile); err == nil {
			return &profile, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get profile from cache: %v", err)
	}

	var profile models.Profile
	err = database.DB.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, profileJSON, ProfileCacheExpiry); err != nil {
		log.Printf("Failed to set profile in cache: %v", err)
	}

	return &profile, nil
}

// Save upserts the user's profile. The row is created lazily on first save.
func (r *ProfileRepository) Save(ctx context.Context, profile *models.Profile) error {
	lockKey := fmt.Sprintf("profile_lock:%d", profile.UserID)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer release()

	var existing models.Profile
	err = database.DB.First(&existing, "user_id = ?", profile.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := database.DB.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to look up profile: %w", err)
	default:
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
		if err := database.DB.Save(profile).Error; err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return r.cache.Delete(ctx, r.getProfileCacheKey(profile.UserID))
}

func (r *ProfileRepository) Delete(ctx context.Context, userID int64) error {
	if err := database.DB.Delete(&models.Profile{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return r.cache.Delete(ctx, r.getProfileCacheKey(userID))
}

func (r *ProfileRepository) getProfileCacheKey(userID int64) string {
	return fmt.Sprintf("profile_cache:%d", userID)
}
