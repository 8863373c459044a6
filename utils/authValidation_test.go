package utils

import (
	"testing"

	"UniClinic/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateUserData(t *testing.T) {
	valid := models.User{
		Username: "ayusuf",
		Email:    "ayusuf@university.edu",
		Password: "Str0ng!pass",
	}

	t.Run("valid user passes", func(t *testing.T) {
		assert.NoError(t, ValidateUserData(valid))
	})

	t.Run("short username fails", func(t *testing.T) {
		user := valid
		user.Username = "ab"
		assert.Error(t, ValidateUserData(user))
	})

	t.Run("malformed email fails", func(t *testing.T) {
		user := valid
		user.Email = "not-an-email"
		assert.Error(t, ValidateUserData(user))
	})

	t.Run("weak passwords fail", func(t *testing.T) {
		for _, password := range []string{"short1!", "alllowercase1!", "ALLUPPERCASE1!", "NoDigits!!", "NoSpecial11"} {
			user := valid
			user.Password = password
			assert.Error(t, ValidateUserData(user), "password %q should be refused", password)
		}
	})

	t.Run("unknown status fails", func(t *testing.T) {
		user := valid
		user.Status = "suspended"
		assert.Error(t, ValidateUserData(user))
	})
}

func TestValidateAppointmentData(t *testing.T) {
	valid := models.Appointment{
		PatientID: 42,
		Date:      "2026-09-10",
		Time:      "09:30",
		Reason:    "Persistent headache",
		Urgency:   models.UrgencyNormal,
	}

	t.Run("valid appointment passes", func(t *testing.T) {
		assert.NoError(t, ValidateAppointmentData(valid))
	})

	t.Run("missing reason fails", func(t *testing.T) {
		appointment := valid
		appointment.Reason = ""
		assert.Error(t, ValidateAppointmentData(appointment))
	})

	t.Run("malformed date fails", func(t *testing.T) {
		appointment := valid
		appointment.Date = "10/09/2026"
		assert.Error(t, ValidateAppointmentData(appointment))
	})

	t.Run("off-grid time fails", func(t *testing.T) {
		appointment := valid
		appointment.Time = "09:45"
		assert.Error(t, ValidateAppointmentData(appointment))
	})

	t.Run("unknown urgency fails", func(t *testing.T) {
		appointment := valid
		appointment.Urgency = "critical"
		assert.Error(t, ValidateAppointmentData(appointment))
	})
}

func TestValidateProfileData(t *testing.T) {
	valid := models.Profile{
		FullName:    "Amina Yusuf",
		Phone:       "0712345678",
		DateOfBirth: "2003-04-12",
		Sex:         "Female",
	}

	t.Run("valid profile passes", func(t *testing.T) {
		assert.NoError(t, ValidateProfileData(valid))
	})

	t.Run("malformed date of birth fails", func(t *testing.T) {
		profile := valid
		profile.DateOfBirth = "12-04-2003"
		assert.Error(t, ValidateProfileData(profile))
	})

	t.Run("emergency contact name without phone fails", func(t *testing.T) {
		profile := valid
		profile.EmergencyContactName = "Halima Yusuf"
		profile.EmergencyContactPhone = ""
		assert.Error(t, ValidateProfileData(profile))
	})
}

func TestValidateHolidayData(t *testing.T) {
	valid := models.AcademicHoliday{
		Name:             "Winter break",
		StartDate:        "2026-12-20",
		EndDate:          "2027-01-05",
		AffectsStaffType: models.StaffTypeAll,
	}

	t.Run("valid holiday passes", func(t *testing.T) {
		assert.NoError(t, ValidateHolidayData(valid))
	})

	t.Run("end before start fails", func(t *testing.T) {
		holiday := valid
		holiday.EndDate = "2026-12-19"
		assert.Error(t, ValidateHolidayData(holiday))
	})

	t.Run("unknown staff type fails", func(t *testing.T) {
		holiday := valid
		holiday.AffectsStaffType = "janitorial"
		assert.Error(t, ValidateHolidayData(holiday))
	})
}

func TestValidateClinicSettingsData(t *testing.T) {
	t.Run("default settings pass", func(t *testing.T) {
		assert.NoError(t, ValidateClinicSettingsData(models.DefaultClinicSettings()))
	})

	t.Run("non-ISO max lookahead date fails", func(t *testing.T) {
		settings := models.DefaultClinicSettings()
		settings.MaxLookaheadDate = "31/12/2030"
		assert.Error(t, ValidateClinicSettingsData(settings))
	})

	t.Run("well-shaped but impossible date fails", func(t *testing.T) {
		settings := models.DefaultClinicSettings()
		settings.MaxLookaheadDate = "2030-13-01"
		assert.Error(t, ValidateClinicSettingsData(settings))
	})

	t.Run("misspelled weekday fails", func(t *testing.T) {
		settings := models.DefaultClinicSettings()
		settings.WorkingDays = "Monday,Tuseday,Friday"
		assert.Error(t, ValidateClinicSettingsData(settings))
	})

	t.Run("close before open fails", func(t *testing.T) {
		settings := models.DefaultClinicSettings()
		settings.OpenTime = "17:00"
		settings.CloseTime = "09:00"
		assert.Error(t, ValidateClinicSettingsData(settings))
	})

	t.Run("malformed open time fails", func(t *testing.T) {
		settings := models.DefaultClinicSettings()
		settings.OpenTime = "9am"
		assert.Error(t, ValidateClinicSettingsData(settings))
	})
}

func TestValidateScheduleData(t *testing.T) {
	valid := models.StaffSchedule{
		UserID:      7,
		WorkingDays: "Monday,Wednesday",
		StartTime:   "09:00",
		EndTime:     "17:00",
	}

	t.Run("valid schedule passes", func(t *testing.T) {
		assert.NoError(t, ValidateScheduleData(valid))
	})

	t.Run("end before start fails", func(t *testing.T) {
		schedule := valid
		schedule.StartTime = "17:00"
		schedule.EndTime = "09:00"
		assert.Error(t, ValidateScheduleData(schedule))
	})

	t.Run("missing working days fails", func(t *testing.T) {
		schedule := valid
		schedule.WorkingDays = ""
		assert.Error(t, ValidateScheduleData(schedule))
	})
}
