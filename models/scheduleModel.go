package models

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Staff types a holiday can target.
const (
	StaffTypeAll           = "all"
	StaffTypeDoctor        = "doctor"
	StaffTypeClinicalStaff = "clinical_staff"
	StaffTypeAcademicStaff = "academic_staff"
)

// Department model
type Department struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:100;not null;unique;index;column:name" json:"name"`
	Code        string    `gorm:"size:20;not null;unique;column:code" json:"code"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Department) TableName() string {
	return "departments"
}

// SeedDepartments inserts initial departments into the database
func SeedDepartments(db *gorm.DB) error {
	initialDepartments := []Department{
		{Name: "General Practice", Code: "GP", Description: "Primary care consultations"},
		{Name: "Mental Health", Code: "MH", Description: "Counselling and psychiatric care"},
		{Name: "Dental", Code: "DEN", Description: "Dental examinations and treatment"},
		{Name: "Laboratory", Code: "LAB", Description: "Diagnostic testing"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, department := range initialDepartments {
			if err := tx.FirstOrCreate(&department, Department{Code: department.Code}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// StaffSchedule is the working-day/hour template attached to a staff user.
// WorkingDays holds full weekday names separated by commas.
type StaffSchedule struct {
	ID               uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID           int64     `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	WorkingDays      string    `gorm:"size:100;not null;column:working_days" json:"working_days"`
	StartTime        string    `gorm:"size:5;not null;column:start_time" json:"start_time"`
	EndTime          string    `gorm:"size:5;not null;column:end_time" json:"end_time"`
	RespectsHolidays bool      `gorm:"column:respects_holidays;default:true" json:"respects_holidays"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	User             User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (StaffSchedule) TableName() string {
	return "staff_schedules"
}

// WorksOn reports whether the weekday belongs to the schedule's working-day set.
func (s *StaffSchedule) WorksOn(day time.Weekday) bool {
	return weekdayInList(s.WorkingDays, day)
}

func weekdayInList(list string, day time.Weekday) bool {
	for _, name := range strings.Split(list, ",") {
		if strings.EqualFold(strings.TrimSpace(name), day.String()) {
			return true
		}
	}
	return false
}

// AcademicHoliday is a date range during which appointment booking is
// suppressed for some or all staff types/departments. Dates are inclusive
// ISO dates (2006-01-02).
type AcademicHoliday struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name                string    `gorm:"size:255;not null;column:name" json:"name"`
	StartDate           string    `gorm:"size:10;not null;index;column:start_date" json:"start_date"`
	EndDate             string    `gorm:"size:10;not null;index;column:end_date" json:"end_date"`
	BlocksAppointments  bool      `gorm:"column:blocks_appointments;default:true" json:"blocks_appointments"`
	AffectsStaffType    string    `gorm:"size:30;not null;default:all;column:affects_staff_type" json:"affects_staff_type"`
	AffectedDepartments string    `gorm:"size:255;column:affected_departments" json:"affected_departments"`
	Active              bool      `gorm:"column:active;default:true;index" json:"active"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AcademicHoliday) TableName() string {
	return "academic_holidays"
}

// Covers reports whether the inclusive date range contains the given ISO
// date. Lexicographic comparison is sufficient for the fixed format.
func (h *AcademicHoliday) Covers(date string) bool {
	return date >= h.StartDate && date <= h.EndDate
}

// AppliesTo reports whether the holiday targets the given staff type and
// department. An empty AffectedDepartments list means every department.
func (h *AcademicHoliday) AppliesTo(staffType string, departmentID *int64) bool {
	if h.AffectsStaffType != StaffTypeAll && h.AffectsStaffType != staffType {
		return false
	}
	if strings.TrimSpace(h.AffectedDepartments) == "" {
		return true
	}
	if departmentID == nil {
		return false
	}
	for _, raw := range strings.Split(h.AffectedDepartments, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			continue
		}
		if id == *departmentID {
			return true
		}
	}
	return false
}
