package services

import (
	"context"
	"testing"
	"time"

	"UniClinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockScheduleStore struct {
	mock.Mock
}

func (m *MockScheduleStore) GetByUserID(ctx context.Context, userID int64) (*models.StaffSchedule, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StaffSchedule), args.Error(1)
}

type MockHolidayStore struct {
	mock.Mock
}

func (m *MockHolidayStore) ListActiveBlocking(ctx context.Context) ([]models.AcademicHoliday, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AcademicHoliday), args.Error(1)
}

type MockClinicSettingsStore struct {
	mock.Mock
}

func (m *MockClinicSettingsStore) GetClinicSettings(ctx context.Context) (*models.ClinicSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClinicSettings), args.Error(1)
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// setupAvailabilityTest pins "now" to Monday 2026-09-07.
func setupAvailabilityTest() (*AvailabilityService, *MockScheduleStore, *MockHolidayStore, *MockClinicSettingsStore, *MockUserStore) {
	schedules := &MockScheduleStore{}
	holidays := &MockHolidayStore{}
	settings := &MockClinicSettingsStore{}
	users := &MockUserStore{}

	service := NewAvailabilityService(schedules, holidays, settings, users)
	service.now = func() time.Time {
		return time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)
	}

	clinic := models.DefaultClinicSettings()
	settings.On("GetClinicSettings", mock.Anything).Return(&clinic, nil)

	return service, schedules, holidays, settings, users
}

func noHolidays(holidays *MockHolidayStore) {
	holidays.On("ListActiveBlocking", mock.Anything).Return([]models.AcademicHoliday{}, nil)
}

func TestCheckBookableDateWindow(t *testing.T) {
	t.Run("malformed date is refused", func(t *testing.T) {
		service, _, _, _, _ := setupAvailabilityTest()

		err := service.CheckBookable(context.Background(), "07/09/2026", "09:00", nil, false)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("past date is refused", func(t *testing.T) {
		service, _, _, _, _ := setupAvailabilityTest()

		err := service.CheckBookable(context.Background(), "2026-09-04", "09:00", nil, false)
		assert.ErrorIs(t, err, ErrPastDate)
	})

	t.Run("same-day booking is allowed", func(t *testing.T) {
		service, _, holidays, _, _ := setupAvailabilityTest()
		noHolidays(holidays)

		err := service.CheckBookable(context.Background(), "2026-09-07", "09:00", nil, false)
		assert.NoError(t, err)
	})

	t.Run("max lookahead date itself is bookable", func(t *testing.T) {
		service, _, holidays, _, _ := setupAvailabilityTest()
		noHolidays(holidays)

		// 2030-12-31 is a Tuesday.
		err := service.CheckBookable(context.Background(), "2030-12-31", "10:00", nil, false)
		assert.NoError(t, err)
	})

	t.Run("one day beyond the lookahead bound is refused", func(t *testing.T) {
		service, _, _, _, _ := setupAvailabilityTest()

		err := service.CheckBookable(context.Background(), "2031-01-01", "10:00", nil, false)
		assert.ErrorIs(t, err, ErrBeyondLookahead)
	})
}

func TestCheckBookableSlots(t *testing.T) {
	service, _, _, _, _ := setupAvailabilityTest()

	err := service.CheckBookable(context.Background(), "2026-09-08", "09:15", nil, false)
	assert.ErrorIs(t, err, ErrInvalidSlot)

	err = service.CheckBookable(context.Background(), "2026-09-08", "18:00", nil, false)
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestCheckBookableWorkingDays(t *testing.T) {
	t.Run("clinic does not open on weekends", func(t *testing.T) {
		service, _, _, _, _ := setupAvailabilityTest()

		// 2026-09-12 is a Saturday.
		err := service.CheckBookable(context.Background(), "2026-09-12", "09:00", nil, false)
		assert.ErrorIs(t, err, ErrNotWorkingDay)
	})

	t.Run("doctor schedule overrides clinic days", func(t *testing.T) {
		service, schedules, holidays, _, users := setupAvailabilityTest()
		doctorID := int64(7)

		users.On("GetUserByID", mock.Anything, doctorID).Return(&models.User{ID: doctorID}, nil)
		schedules.On("GetByUserID", mock.Anything, doctorID).Return(&models.StaffSchedule{
			UserID:           doctorID,
			WorkingDays:      "Tuesday,Thursday",
			RespectsHolidays: true,
		}, nil)
		noHolidays(holidays)

		// Monday: clinic is open but the doctor is not in.
		err := service.CheckBookable(context.Background(), "2026-09-07", "09:00", &doctorID, false)
		assert.ErrorIs(t, err, ErrNotWorkingDay)

		// Tuesday works.
		err = service.CheckBookable(context.Background(), "2026-09-08", "09:00", &doctorID, false)
		assert.NoError(t, err)
	})

	t.Run("doctor availability fields apply when no schedule row exists", func(t *testing.T) {
		service, schedules, holidays, _, users := setupAvailabilityTest()
		doctorID := int64(9)

		users.On("GetUserByID", mock.Anything, doctorID).Return(&models.User{
			ID:            doctorID,
			AvailableDays: "Friday",
		}, nil)
		schedules.On("GetByUserID", mock.Anything, doctorID).Return(nil, nil)
		noHolidays(holidays)

		err := service.CheckBookable(context.Background(), "2026-09-08", "09:00", &doctorID, false)
		assert.ErrorIs(t, err, ErrNotWorkingDay)

		// 2026-09-11 is a Friday.
		err = service.CheckBookable(context.Background(), "2026-09-11", "09:00", &doctorID, false)
		assert.NoError(t, err)
	})
}

func TestCheckBookableHolidays(t *testing.T) {
	blockingHoliday := models.AcademicHoliday{
		Name:               "Winter break",
		StartDate:          "2026-09-08",
		EndDate:            "2026-09-10",
		BlocksAppointments: true,
		AffectsStaffType:   models.StaffTypeAll,
		Active:             true,
	}

	t.Run("covered date is refused", func(t *testing.T) {
		service, _, holidays, _, _ := setupAvailabilityTest()
		holidays.On("ListActiveBlocking", mock.Anything).Return([]models.AcademicHoliday{blockingHoliday}, nil)

		err := service.CheckBookable(context.Background(), "2026-09-09", "09:00", nil, false)
		assert.ErrorIs(t, err, ErrHolidayBlocked)
	})

	t.Run("date outside the range passes", func(t *testing.T) {
		service, _, holidays, _, _ := setupAvailabilityTest()
		holidays.On("ListActiveBlocking", mock.Anything).Return([]models.AcademicHoliday{blockingHoliday}, nil)

		err := service.CheckBookable(context.Background(), "2026-09-11", "09:00", nil, false)
		assert.NoError(t, err)
	})

	t.Run("staff holiday override skips the rule", func(t *testing.T) {
		service, _, holidays, _, _ := setupAvailabilityTest()
		holidays.On("ListActiveBlocking", mock.Anything).Return([]models.AcademicHoliday{blockingHoliday}, nil)

		err := service.CheckBookable(context.Background(), "2026-09-09", "09:00", nil, true)
		assert.NoError(t, err)
	})

	t.Run("department-scoped holiday only blocks that department", func(t *testing.T) {
		service, schedules, holidays, _, users := setupAvailabilityTest()
		doctorID := int64(3)
		dentalDept := int64(3)

		users.On("GetUserByID", mock.Anything, doctorID).Return(&models.User{
			ID:           doctorID,
			DepartmentID: &dentalDept,
		}, nil)
		schedules.On("GetByUserID", mock.Anything, doctorID).Return(nil, nil)

		scoped := blockingHoliday
		scoped.AffectedDepartments = "1,2"
		holidays.On("ListActiveBlocking", mock.Anything).Return([]models.AcademicHoliday{scoped}, nil)

		err := service.CheckBookable(context.Background(), "2026-09-09", "09:00", &doctorID, false)
		assert.NoError(t, err)
	})

	t.Run("schedule exempt from holidays passes", func(t *testing.T) {
		service, schedules, holidays, _, users := setupAvailabilityTest()
		doctorID := int64(5)

		users.On("GetUserByID", mock.Anything, doctorID).Return(&models.User{ID: doctorID}, nil)
		schedules.On("GetByUserID", mock.Anything, doctorID).Return(&models.StaffSchedule{
			UserID:           doctorID,
			WorkingDays:      "Monday,Tuesday,Wednesday,Thursday,Friday",
			RespectsHolidays: false,
		}, nil)

		err := service.CheckBookable(context.Background(), "2026-09-09", "09:00", &doctorID, false)
		assert.NoError(t, err)
		holidays.AssertNotCalled(t, "ListActiveBlocking", mock.Anything)
	})
}
