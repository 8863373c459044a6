package models

import (
	"time"
)

// Profile is the medical card attached 1:1 to a user. It is created lazily
// on the first profile save, not at registration.
type Profile struct {
	ID          uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID      int64  `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	FullName    string `gorm:"column:full_name" json:"full_name"`
	Phone       string `gorm:"column:phone" json:"phone"`
	DateOfBirth string `gorm:"column:date_of_birth" json:"date_of_birth"`
	Sex         string `gorm:"column:sex;check:sex IN ('Male', 'Female', 'Other', '')" json:"sex"`
	Address     string `gorm:"column:address" json:"address"`

	EmergencyContactName     string `gorm:"column:emergency_contact_name" json:"emergency_contact_name"`
	EmergencyContactPhone    string `gorm:"column:emergency_contact_phone" json:"emergency_contact_phone"`
	EmergencyContactRelation string `gorm:"column:emergency_contact_relation" json:"emergency_contact_relation"`

	BloodType          string `gorm:"size:5;column:blood_type" json:"blood_type"`
	Allergies          string `gorm:"type:text;column:allergies" json:"allergies"`
	ChronicConditions  string `gorm:"type:text;column:chronic_conditions" json:"chronic_conditions"`
	CurrentMedications string `gorm:"type:text;column:current_medications" json:"current_medications"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	User      User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

// IsComplete reports whether the fixed required field set is present.
// Booking is refused until it returns true.
func (p *Profile) IsComplete() bool {
	return p.FullName != "" &&
		p.Phone != "" &&
		p.DateOfBirth != "" &&
		p.EmergencyContactName != "" &&
		p.EmergencyContactPhone != ""
}

// MissingFields lists the required fields still empty, for the error payload.
func (p *Profile) MissingFields() []string {
	var missing []string
	if p.FullName == "" {
		missing = append(missing, "full_name")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	if p.DateOfBirth == "" {
		missing = append(missing, "date_of_birth")
	}
	if p.EmergencyContactName == "" {
		missing = append(missing, "emergency_contact_name")
	}
	if p.EmergencyContactPhone == "" {
		missing = append(missing, "emergency_contact_phone")
	}
	return missing
}
