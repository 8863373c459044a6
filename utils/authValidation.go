package utils

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"UniClinic/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter, one digit, and one special character")
	ErrInvalidResetCode   = errors.New("invalid reset code")
)

var (
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormat = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidateUserData validates user data using ozzo-validation.
func ValidateUserData(user models.User) error {
	err := validation.ValidateStruct(&user,
		validation.Field(&user.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&user.Email, validation.Required, is.Email),
		validation.Field(&user.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
		validation.Field(&user.Status, validation.In(
			"", models.UserStatusActive, models.UserStatusInactive,
			models.UserStatusPendingVerification, models.UserStatusArchived,
		)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateProfileData validates a profile/medical card payload.
func ValidateProfileData(profile models.Profile) error {
	err := validation.ValidateStruct(&profile,
		validation.Field(&profile.FullName, validation.Required, validation.Length(2, 255)),
		validation.Field(&profile.Phone, validation.Required, validation.Length(7, 20)),
		validation.Field(&profile.DateOfBirth, validation.Required, validation.Match(dateFormat).Error("must be YYYY-MM-DD")),
		validation.Field(&profile.Sex, validation.In("", "Male", "Female", "Other")),
		validation.Field(&profile.EmergencyContactPhone, validation.When(
			profile.EmergencyContactName != "", validation.Required, validation.Length(7, 20),
		)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateAppointmentData validates the user-supplied appointment fields.
// Availability rules (working days, holidays, lookahead) are checked
// separately by the availability service.
func ValidateAppointmentData(appointment models.Appointment) error {
	err := validation.ValidateStruct(&appointment,
		validation.Field(&appointment.PatientID, validation.Required),
		validation.Field(&appointment.Date, validation.Required, validation.Match(dateFormat).Error("must be YYYY-MM-DD")),
		validation.Field(&appointment.Time, validation.Required, validation.Match(timeFormat).Error("must be HH:MM"), validation.By(validateSlot)),
		validation.Field(&appointment.Reason, validation.Required, validation.Length(3, 0)),
		validation.Field(&appointment.Urgency, validation.In(
			"", models.UrgencyNormal, models.UrgencyHigh,
			models.UrgencyUrgent, models.UrgencyEmergency,
		)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

func validateSlot(value interface{}) error {
	t, _ := value.(string)
	if !models.ValidSlot(t) {
		return errors.New("time is not an available slot")
	}
	return nil
}

// ValidateHolidayData validates an academic holiday payload.
func ValidateHolidayData(holiday models.AcademicHoliday) error {
	err := validation.ValidateStruct(&holiday,
		validation.Field(&holiday.Name, validation.Required, validation.Length(2, 255)),
		validation.Field(&holiday.StartDate, validation.Required, validation.Match(dateFormat).Error("must be YYYY-MM-DD")),
		validation.Field(&holiday.EndDate, validation.Required, validation.Match(dateFormat).Error("must be YYYY-MM-DD"), validation.By(func(interface{}) error {
			if holiday.EndDate < holiday.StartDate {
				return errors.New("end date precedes start date")
			}
			return nil
		})),
		validation.Field(&holiday.AffectsStaffType, validation.Required, validation.In(
			models.StaffTypeAll, models.StaffTypeDoctor,
			models.StaffTypeClinicalStaff, models.StaffTypeAcademicStaff,
		)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateScheduleData validates a staff schedule payload.
func ValidateScheduleData(schedule models.StaffSchedule) error {
	err := validation.ValidateStruct(&schedule,
		validation.Field(&schedule.UserID, validation.Required),
		validation.Field(&schedule.WorkingDays, validation.Required),
		validation.Field(&schedule.StartTime, validation.Required, validation.Match(timeFormat).Error("must be HH:MM")),
		validation.Field(&schedule.EndTime, validation.Required, validation.Match(timeFormat).Error("must be HH:MM"), validation.By(func(interface{}) error {
			if schedule.EndTime <= schedule.StartTime {
				return errors.New("end time must be after start time")
			}
			return nil
		})),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// ValidateClinicSettingsData validates the singleton clinic parameters.
// The availability rules compare these fields lexicographically, so the
// formats are enforced here at write time.
func ValidateClinicSettingsData(settings models.ClinicSettings) error {
	err := validation.ValidateStruct(&settings,
		validation.Field(&settings.OpenTime, validation.Required, validation.Match(timeFormat).Error("must be HH:MM")),
		validation.Field(&settings.CloseTime, validation.Required, validation.Match(timeFormat).Error("must be HH:MM"), validation.By(func(interface{}) error {
			if settings.CloseTime <= settings.OpenTime {
				return errors.New("close time must be after open time")
			}
			return nil
		})),
		validation.Field(&settings.WorkingDays, validation.Required, validation.By(validateWeekdayList)),
		validation.Field(&settings.MaxLookaheadDate, validation.Required, validation.Match(dateFormat).Error("must be YYYY-MM-DD"), validation.By(validateCalendarDate)),
		validation.Field(&settings.ContactEmail, validation.When(settings.ContactEmail != "", is.Email)),
	)
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// validateWeekdayList checks every comma-separated entry against the real
// weekday names.
func validateWeekdayList(value interface{}) error {
	list, _ := value.(string)
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if !knownWeekday(name) {
			return fmt.Errorf("unknown weekday: %s", name)
		}
	}
	return nil
}

func knownWeekday(name string) bool {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(name, day.String()) {
			return true
		}
	}
	return false
}

// validateCalendarDate rejects well-shaped but impossible dates.
func validateCalendarDate(value interface{}) error {
	date, _ := value.(string)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("must be a valid calendar date")
	}
	return nil
}

// ValidatePasswordReset validates the reset code and new password.
func ValidatePasswordReset(resetCode, newPassword string) error {
	err := validation.Errors{
		"resetCode": validation.Validate(resetCode, validation.Required.Error("invalid reset code")),
		"password":  validation.Validate(newPassword, validation.Required, validation.By(validatePassword)),
	}.Filter()
	if err != nil {
		log.Printf("Validation error: %v\n", err)
	}
	return err
}

// validatePassword checks the password for length and complexity.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var (
		lowercaseRegex = regexp.MustCompile(`[a-z]`)
		uppercaseRegex = regexp.MustCompile(`[A-Z]`)
		digitRegex     = regexp.MustCompile(`\d`)
		specialRegex   = regexp.MustCompile(`[@$!%*?&]`)
	)

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!specialRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}

	return nil
}
