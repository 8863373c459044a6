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
	SettingsCacheExpiry = 24 * time.Hour

	clinicSettingsCacheKey = "clinic_settings_cache"
)

type SettingsRepository struct {
	cache *cache.Cache
}

func NewSettingsRepository(cache *cache.Cache) *SettingsRepository {
	return &SettingsRepository{cache: cache}
}

// GetSection returns one typed system-settings row.
func (r *SettingsRepository) GetSection(ctx context.Context, section string) (*models.SystemSetting, error) {
	if !models.ValidSection(section) {
		return nil, fmt.Errorf("unknown settings section: %s", section)
	}

	var setting models.SystemSetting
	err := database.DB.First(&setting, "section = ?", section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get settings section: %w", err)
	}
	return &setting, nil
}

// UpdateSection replaces a section's payload. The payload must decode into
// the section's typed struct, otherwise the write is refused.
func (r *SettingsRepository) UpdateSection(ctx context.Context, section, value string, updatedBy int64) (*models.SystemSetting, error) {
	if !models.ValidSection(section) {
		return nil, fmt.Errorf("unknown settings section: %s", section)
	}

	candidate := models.SystemSetting{Section: section, Value: value}
	if _, err := candidate.DecodeSection(); err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf("settings_lock:%s", section)
	release, err := acquireLock(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	defer release()

	var setting models.SystemSetting
	err = database.DB.First(&setting, "section = ?", section).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get settings section: %w", err)
	}

	setting.Value = value
	setting.UpdatedBy = &updatedBy
	if err := database.DB.Save(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings section: %w", err)
	}
	return &setting, nil
}

func (r *SettingsRepository) GetAllSections(ctx context.Context) ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	if err := database.DB.Order("section").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// GetClinicSettings returns the singleton clinic-settings row, creating the
// default one on first access. The row feeds every availability check, so
// it is cached.
func (r *SettingsRepository) GetClinicSettings(ctx context.Context) (*models.ClinicSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedSettings, err := r.cache.Get(ctx, clinicSettingsCacheKey)
	if err == nil {
		var settings models.ClinicSettings
		if err := json.Unmarshal([]byte(cachedSettings), &settings); err == nil {
			return &settings, nil
		}
	} else if err != redis.Nil {
		log.Printf("Failed to get clinic settings from cache: %v", err)
	}

	settings, err := models.GetClinicSettings(database.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic settings: %w", err)
	}

	settingsJSON, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clinic settings: %w", err)
	}
	if err := r.cache.Set(ctx, clinicSettingsCacheKey, settingsJSON, SettingsCacheExpiry); err != nil {
		log.Printf("Failed to set clinic settings in cache: %v", err)
	}

	return settings, nil
}

func (r *SettingsRepository) UpdateClinicSettings(ctx context.Context, settings *models.ClinicSettings) error {
	settings.ID = 1
	if err := database.DB.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update clinic settings: %w", err)
	}
	return r.cache.Delete(ctx, clinicSettingsCacheKey)
}
