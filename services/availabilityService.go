package services

import (
	"context"
	"errors"
	"time"

	"UniClinic/models"
)

// Availability errors, mapped to 400/409 responses by the handlers.
var (
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrPastDate        = errors.New("appointments cannot be booked in the past")
	ErrBeyondLookahead = errors.New("date is beyond the maximum booking window")
	ErrInvalidSlot     = errors.New("time is not an available slot")
	ErrNotWorkingDay   = errors.New("the clinic or doctor does not work on that day")
	ErrHolidayBlocked  = errors.New("booking is blocked by an academic holiday on that date")
)

// ScheduleStore provides staff schedules to the availability rules.
type ScheduleStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.StaffSchedule, error)
}

// HolidayStore provides the active blocking holidays.
type HolidayStore interface {
	ListActiveBlocking(ctx context.Context) ([]models.AcademicHoliday, error)
}

// ClinicSettingsStore provides the clinic-wide booking defaults.
type ClinicSettingsStore interface {
	GetClinicSettings(ctx context.Context) (*models.ClinicSettings, error)
}

// UserStore provides doctor lookups for schedule and department resolution.
type UserStore interface {
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

// AvailabilityService decides whether a candidate (date, time, doctor)
// combination is bookable. Create and reschedule share it.
type AvailabilityService struct {
	schedules ScheduleStore
	holidays  HolidayStore
	settings  ClinicSettingsStore
	users     UserStore
	now       func() time.Time
}

func NewAvailabilityService(schedules ScheduleStore, holidays HolidayStore, settings ClinicSettingsStore, users UserStore) *AvailabilityService {
	return &AvailabilityService{
		schedules: schedules,
		holidays:  holidays,
		settings:  settings,
		users:     users,
		now:       time.Now,
	}
}

// CheckBookable validates a candidate slot against the booking window, the
// slot grid, working days and the holiday calendar. holidayOverride skips
// only the holiday rule; staff set it when booking into a holiday
// deliberately.
func (s *AvailabilityService) CheckBookable(ctx context.Context, date, timeSlot string, doctorID *int64, holidayOverride bool) error {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrInvalidDate
	}

	settings, err := s.settings.GetClinicSettings(ctx)
	if err != nil {
		return err
	}

	today := s.now().Format("2006-01-02")
	if date < today {
		return ErrPastDate
	}
	if settings.MaxLookaheadDate != "" && date > settings.MaxLookaheadDate {
		return ErrBeyondLookahead
	}

	if !models.ValidSlot(timeSlot) {
		return ErrInvalidSlot
	}

	weekday := parsed.Weekday()
	staffType := models.StaffTypeDoctor
	var departmentID *int64
	respectsHolidays := true

	if doctorID != nil {
		doctor, err := s.users.GetUserByID(ctx, *doctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return errors.New("doctor not found")
		}
		departmentID = doctor.DepartmentID

		schedule, err := s.schedules.GetByUserID(ctx, *doctorID)
		if err != nil {
			return err
		}
		switch {
		case schedule != nil:
			if !schedule.WorksOn(weekday) {
				return ErrNotWorkingDay
			}
			respectsHolidays = schedule.RespectsHolidays
		case doctor.AvailableDays != "":
			if !doctor.WorksOn(weekday) {
				return ErrNotWorkingDay
			}
		default:
			if !settings.WorksOn(weekday) {
				return ErrNotWorkingDay
			}
		}
	} else {
		// "Any available doctor": the clinic working-day set applies and
		// only clinic-wide holidays block.
		if !settings.WorksOn(weekday) {
			return ErrNotWorkingDay
		}
	}

	if holidayOverride || !respectsHolidays {
		return nil
	}

	holidays, err := s.holidays.ListActiveBlocking(ctx)
	if err != nil {
		return err
	}
	for _, holiday := range holidays {
		if holiday.Covers(date) && holiday.AppliesTo(staffType, departmentID) {
			return ErrHolidayBlocked
		}
	}

	return nil
}
