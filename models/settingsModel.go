package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Settings sections. One SystemSetting row per section.
const (
	SettingsGeneral  = "general"
	SettingsAuth     = "auth"
	SettingsEmail    = "email"
	SettingsUploads  = "uploads"
	SettingsSecurity = "security"
	SettingsBackup   = "backup"
)

// SystemSetting holds one typed configuration section serialized as JSON.
// Malformed payloads fail at decode time, not at first use.
type SystemSetting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Section   string    `gorm:"size:30;not null;uniqueIndex;column:section" json:"section"`
	Value     string    `gorm:"type:jsonb;not null;column:value" json:"value"`
	UpdatedBy *int64    `gorm:"column:updated_by" json:"updated_by"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SystemSetting) TableName() string {
	return "system_settings"
}

// GeneralSettings section.
type GeneralSettings struct {
	ClinicName    string `json:"clinic_name"`
	Address       string `json:"address"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
	Timezone      string `json:"timezone"`
	WelcomeNotice string `json:"welcome_notice"`
}

// AuthSettings section.
type AuthSettings struct {
	MinPasswordLength   int  `json:"min_password_length"`
	RequireVerification bool `json:"require_verification"`
	AccessTokenHours    int  `json:"access_token_hours"`
	RefreshTokenDays    int  `json:"refresh_token_days"`
	MaxFailedLogins     int  `json:"max_failed_logins"`
	LockoutMinutes      int  `json:"lockout_minutes"`
}

// EmailSettings section.
type EmailSettings struct {
	FromAddress  string `json:"from_address"`
	FromName     string `json:"from_name"`
	ReplyTo      string `json:"reply_to"`
	SendOnBook   bool   `json:"send_on_book"`
	SendOnCancel bool   `json:"send_on_cancel"`
}

// UploadSettings section.
type UploadSettings struct {
	MaxSizeMB    int      `json:"max_size_mb"`
	AllowedTypes []string `json:"allowed_types"`
}

// SecuritySettings section.
type SecuritySettings struct {
	RateLimitPerSecond float64 `json:"rate_limit_per_second"`
	RateLimitBurst     int     `json:"rate_limit_burst"`
	SessionIdleMinutes int     `json:"session_idle_minutes"`
}

// BackupSettings section.
type BackupSettings struct {
	Enabled       bool   `json:"enabled"`
	IntervalHours int    `json:"interval_hours"`
	RetentionDays int    `json:"retention_days"`
	Target        string `json:"target"`
}

// DefaultSettings returns the seed payload for every section.
func DefaultSettings() map[string]interface{} {
	return map[string]interface{}{
		SettingsGeneral: GeneralSettings{
			ClinicName:   "University Health Clinic",
			Timezone:     "UTC",
			ContactEmail: "clinic@university.edu",
		},
		SettingsAuth: AuthSettings{
			MinPasswordLength: 8,
			AccessTokenHours:  24,
			RefreshTokenDays:  7,
			MaxFailedLogins:   5,
			LockoutMinutes:    15,
		},
		SettingsEmail: EmailSettings{
			FromName:   "University Health Clinic",
			SendOnBook: true,
		},
		SettingsUploads: UploadSettings{
			MaxSizeMB:    10,
			AllowedTypes: []string{"image/png", "image/jpeg", "application/pdf"},
		},
		SettingsSecurity: SecuritySettings{
			RateLimitPerSecond: 15,
			RateLimitBurst:     30,
			SessionIdleMinutes: 60,
		},
		SettingsBackup: BackupSettings{
			IntervalHours: 24,
			RetentionDays: 30,
			Target:        "local",
		},
	}
}

// DecodeSection decodes the JSON payload into the typed struct for the
// row's section. Unknown sections are refused.
func (s *SystemSetting) DecodeSection() (interface{}, error) {
	var target interface{}
	switch s.Section {
	case SettingsGeneral:
		target = &GeneralSettings{}
	case SettingsAuth:
		target = &AuthSettings{}
	case SettingsEmail:
		target = &EmailSettings{}
	case SettingsUploads:
		target = &UploadSettings{}
	case SettingsSecurity:
		target = &SecuritySettings{}
	case SettingsBackup:
		target = &BackupSettings{}
	default:
		return nil, fmt.Errorf("unknown settings section: %s", s.Section)
	}
	if err := json.Unmarshal([]byte(s.Value), target); err != nil {
		return nil, fmt.Errorf("malformed %s settings: %w", s.Section, err)
	}
	return target, nil
}

// ValidSection reports whether name is a known settings section.
func ValidSection(name string) bool {
	switch name {
	case SettingsGeneral, SettingsAuth, SettingsEmail,
		SettingsUploads, SettingsSecurity, SettingsBackup:
		return true
	}
	return false
}

// SeedSystemSettings inserts default rows for every missing section.
func SeedSystemSettings(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for section, value := range DefaultSettings() {
			payload, err := json.Marshal(value)
			if err != nil {
				return err
			}
			setting := SystemSetting{Section: section, Value: string(payload)}
			if err := tx.FirstOrCreate(&setting, SystemSetting{Section: section}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ClinicSettings is the singleton row of admin-configurable clinic
// parameters consumed by the availability rules.
type ClinicSettings struct {
	ID               uint      `gorm:"primaryKey;column:id" json:"id"`
	OpenTime         string    `gorm:"size:5;not null;default:'09:00';column:open_time" json:"open_time"`
	CloseTime        string    `gorm:"size:5;not null;default:'17:00';column:close_time" json:"close_time"`
	WorkingDays      string    `gorm:"size:100;not null;column:working_days" json:"working_days"`
	MaxLookaheadDate string    `gorm:"size:10;not null;column:max_lookahead_date" json:"max_lookahead_date"`
	HealthTips       string    `gorm:"type:text;column:health_tips" json:"health_tips"`
	ContactEmail     string    `gorm:"size:255;column:contact_email" json:"contact_email"`
	ContactPhone     string    `gorm:"size:30;column:contact_phone" json:"contact_phone"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClinicSettings) TableName() string {
	return "clinic_settings"
}

// DefaultClinicSettings is the row created when none exists yet.
func DefaultClinicSettings() ClinicSettings {
	return ClinicSettings{
		ID:               1,
		OpenTime:         "09:00",
		CloseTime:        "17:00",
		WorkingDays:      "Monday,Tuesday,Wednesday,Thursday,Friday",
		MaxLookaheadDate: "2030-12-31",
		ContactEmail:     "clinic@university.edu",
	}
}

// GetClinicSettings returns the singleton row, creating the default one if
// none exists.
func GetClinicSettings(db *gorm.DB) (*ClinicSettings, error) {
	settings := DefaultClinicSettings()
	if err := db.FirstOrCreate(&settings, ClinicSettings{ID: 1}).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// WorksOn reports whether the weekday belongs to the clinic's working-day set.
func (c *ClinicSettings) WorksOn(day time.Weekday) bool {
	return weekdayInList(c.WorkingDays, day)
}
