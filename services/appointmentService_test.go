package services

import (
	"context"
	"testing"
	"time"

	"UniClinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentStore struct {
	mock.Mock
}

func (m *MockAppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) Update(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) UpdateSlot(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) GetAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) ListByPatient(ctx context.Context, patientID int64) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) ListByDoctor(ctx context.Context, doctorID int64) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) ListByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) ListNeedingReassignment(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) ListUnassigned(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentStore) CountPending(ctx context.Context, patientID int64) (int64, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentStore) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

type MockAvailabilityChecker struct {
	mock.Mock
}

func (m *MockAvailabilityChecker) CheckBookable(ctx context.Context, date, timeSlot string, doctorID *int64, holidayOverride bool) error {
	args := m.Called(ctx, date, timeSlot, doctorID, holidayOverride)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, userID int64, notificationType, title, message string) error {
	args := m.Called(ctx, userID, notificationType, title, message)
	return args.Error(0)
}

var testNow = time.Date(2026, 9, 7, 9, 30, 0, 0, time.UTC)

func setupAppointmentTest() (*AppointmentService, *MockAppointmentStore, *MockProfileStore, *MockAvailabilityChecker, *MockNotifier) {
	store := &MockAppointmentStore{}
	profiles := &MockProfileStore{}
	availability := &MockAvailabilityChecker{}
	notifier := &MockNotifier{}

	service := NewAppointmentService(store, profiles, availability, notifier)
	service.now = func() time.Time { return testNow }

	return service, store, profiles, availability, notifier
}

func bookableRequest() *models.Appointment {
	return &models.Appointment{
		PatientID: 42,
		Date:      "2026-09-10",
		Time:      "09:30",
		Reason:    "Persistent headache",
	}
}

func patientProfile() *models.Profile {
	return &models.Profile{
		UserID:                42,
		FullName:              "Amina Yusuf",
		Phone:                 "0712345678",
		DateOfBirth:           "2003-04-12",
		EmergencyContactName:  "Halima Yusuf",
		EmergencyContactPhone: "0798765432",
	}
}

func TestCreateAppointment(t *testing.T) {
	t.Run("patient booking succeeds and defaults urgency", func(t *testing.T) {
		service, store, profiles, availability, _ := setupAppointmentTest()
		appointment := bookableRequest()

		profiles.On("GetByUserID", mock.Anything, int64(42)).Return(patientProfile(), nil)
		store.On("CountPending", mock.Anything, int64(42)).Return(int64(0), nil)
		availability.On("CheckBookable", mock.Anything, "2026-09-10", "09:30", (*int64)(nil), false).Return(nil)
		store.On("Create", mock.Anything, appointment).Return(nil)

		err := service.Create(context.Background(), appointment, false)

		require.NoError(t, err)
		assert.Equal(t, models.AppointmentScheduled, appointment.Status)
		assert.Equal(t, models.UrgencyNormal, appointment.Urgency)
		store.AssertExpectations(t)
	})

	t.Run("incomplete profile blocks booking with no row created", func(t *testing.T) {
		service, store, profiles, _, _ := setupAppointmentTest()
		appointment := bookableRequest()

		incomplete := patientProfile()
		incomplete.EmergencyContactPhone = ""
		profiles.On("GetByUserID", mock.Anything, int64(42)).Return(incomplete, nil)

		err := service.Create(context.Background(), appointment, false)

		assert.ErrorIs(t, err, ErrProfileIncomplete)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing profile blocks booking", func(t *testing.T) {
		service, store, profiles, _, _ := setupAppointmentTest()
		appointment := bookableRequest()

		profiles.On("GetByUserID", mock.Anything, int64(42)).Return(nil, nil)

		err := service.Create(context.Background(), appointment, false)

		assert.ErrorIs(t, err, ErrProfileIncomplete)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("second pending appointment is refused", func(t *testing.T) {
		service, store, profiles, _, _ := setupAppointmentTest()
		appointment := bookableRequest()

		profiles.On("GetByUserID", mock.Anything, int64(42)).Return(patientProfile(), nil)
		store.On("CountPending", mock.Anything, int64(42)).Return(int64(1), nil)

		err := service.Create(context.Background(), appointment, false)

		assert.ErrorIs(t, err, ErrPendingExists)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("availability rejection leaves no row", func(t *testing.T) {
		service, store, profiles, availability, _ := setupAppointmentTest()
		appointment := bookableRequest()

		profiles.On("GetByUserID", mock.Anything, int64(42)).Return(patientProfile(), nil)
		store.On("CountPending", mock.Anything, int64(42)).Return(int64(0), nil)
		availability.On("CheckBookable", mock.Anything, "2026-09-10", "09:30", (*int64)(nil), false).Return(ErrHolidayBlocked)

		err := service.Create(context.Background(), appointment, false)

		assert.ErrorIs(t, err, ErrHolidayBlocked)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing reason is refused", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := bookableRequest()
		appointment.Reason = ""

		err := service.Create(context.Background(), appointment, false)

		assert.Error(t, err)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("staff booking skips patient gates and notifies the doctor", func(t *testing.T) {
		service, store, _, availability, notifier := setupAppointmentTest()
		doctorID := int64(7)
		appointment := bookableRequest()
		appointment.DoctorID = &doctorID

		availability.On("CheckBookable", mock.Anything, "2026-09-10", "09:30", &doctorID, false).Return(nil)
		store.On("Create", mock.Anything, appointment).Return(nil)
		notifier.On("Notify", mock.Anything, doctorID, models.NotifyAppointmentAssigned, mock.Anything, mock.Anything).Return(nil)

		err := service.Create(context.Background(), appointment, true)

		require.NoError(t, err)
		require.NotNil(t, appointment.AssignedAt)
		assert.Equal(t, testNow, *appointment.AssignedAt)
		notifier.AssertExpectations(t)
	})

	t.Run("patients cannot set the holiday override", func(t *testing.T) {
		service, store, profiles, availability, _ := setupAppointmentTest()
		appointment := bookableRequest()
		appointment.HolidayOverride = true

		profiles.On("GetByUserID", mock.Anything, int64(42)).Return(patientProfile(), nil)
		store.On("CountPending", mock.Anything, int64(42)).Return(int64(0), nil)
		availability.On("CheckBookable", mock.Anything, "2026-09-10", "09:30", (*int64)(nil), false).Return(nil)
		store.On("Create", mock.Anything, appointment).Return(nil)

		err := service.Create(context.Background(), appointment, false)

		require.NoError(t, err)
		assert.False(t, appointment.HolidayOverride)
	})
}

func TestConfirmAppointment(t *testing.T) {
	t.Run("scheduled becomes confirmed and the patient is notified", func(t *testing.T) {
		service, store, _, _, notifier := setupAppointmentTest()
		appointment := &models.Appointment{
			ID:        10,
			PatientID: 42,
			Date:      "2026-09-10",
			Time:      "09:30",
			Status:    models.AppointmentScheduled,
		}

		store.On("GetByID", mock.Anything, uint(10)).Return(appointment, nil)
		store.On("Update", mock.Anything, appointment).Return(nil)
		notifier.On("Notify", mock.Anything, int64(42), models.NotifyAppointmentConfirmed, mock.Anything, mock.Anything).Return(nil)

		confirmed, err := service.Confirm(context.Background(), 10)

		require.NoError(t, err)
		assert.Equal(t, models.AppointmentConfirmed, confirmed.Status)
		require.NotNil(t, confirmed.ConfirmedAt)
		assert.Equal(t, testNow, *confirmed.ConfirmedAt)
		notifier.AssertExpectations(t)
	})

	t.Run("confirming a completed appointment is refused", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := &models.Appointment{ID: 11, Status: models.AppointmentCompleted}

		store.On("GetByID", mock.Anything, uint(11)).Return(appointment, nil)

		_, err := service.Confirm(context.Background(), 11)

		assert.ErrorIs(t, err, ErrInvalidTransition)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown appointment returns not found", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()

		store.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

		_, err := service.Confirm(context.Background(), 99)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Run("cancelling a confirmed appointment with a doctor raises reassignment", func(t *testing.T) {
		service, store, _, _, notifier := setupAppointmentTest()
		doctorID := int64(7)
		appointment := &models.Appointment{
			ID:        20,
			PatientID: 42,
			DoctorID:  &doctorID,
			Date:      "2026-09-10",
			Time:      "09:30",
			Status:    models.AppointmentConfirmed,
		}

		store.On("GetByID", mock.Anything, uint(20)).Return(appointment, nil)
		store.On("Update", mock.Anything, appointment).Return(nil)
		notifier.On("Notify", mock.Anything, doctorID, models.NotifyAppointmentCancelled, mock.Anything, mock.Anything).Return(nil)

		cancelled, err := service.Cancel(context.Background(), 20, 42, "Exam clash", false)

		require.NoError(t, err)
		assert.Equal(t, models.AppointmentCancelled, cancelled.Status)
		require.NotNil(t, cancelled.CancelledAt)
		require.NotNil(t, cancelled.CancelledBy)
		assert.Equal(t, int64(42), *cancelled.CancelledBy)
		assert.Equal(t, "Exam clash", cancelled.CancellationReason)
		assert.True(t, cancelled.NeedsReassignment)
		notifier.AssertExpectations(t)
	})

	t.Run("cancelling without a doctor does not raise reassignment", func(t *testing.T) {
		service, store, _, _, notifier := setupAppointmentTest()
		appointment := &models.Appointment{
			ID:        21,
			PatientID: 42,
			Status:    models.AppointmentScheduled,
		}

		store.On("GetByID", mock.Anything, uint(21)).Return(appointment, nil)
		store.On("Update", mock.Anything, appointment).Return(nil)
		notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		cancelled, err := service.Cancel(context.Background(), 21, 99, "Patient request", true)

		require.NoError(t, err)
		assert.False(t, cancelled.NeedsReassignment)
	})

	t.Run("cancelling a cancelled appointment is refused", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := &models.Appointment{ID: 22, PatientID: 42, Status: models.AppointmentCancelled}

		store.On("GetByID", mock.Anything, uint(22)).Return(appointment, nil)

		_, err := service.Cancel(context.Background(), 22, 42, "again", false)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("patients cannot cancel someone else's appointment", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := &models.Appointment{ID: 23, PatientID: 42, Status: models.AppointmentScheduled}

		store.On("GetByID", mock.Anything, uint(23)).Return(appointment, nil)

		_, err := service.Cancel(context.Background(), 23, 77, "not mine", false)

		assert.ErrorIs(t, err, ErrNotOwner)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestRejectAppointment(t *testing.T) {
	t.Run("scheduled request is rejected with a stamp", func(t *testing.T) {
		service, store, _, _, notifier := setupAppointmentTest()
		appointment := &models.Appointment{
			ID:        30,
			PatientID: 42,
			Date:      "2026-09-10",
			Time:      "09:30",
			Status:    models.AppointmentScheduled,
		}

		store.On("GetByID", mock.Anything, uint(30)).Return(appointment, nil)
		store.On("Update", mock.Anything, appointment).Return(nil)
		notifier.On("Notify", mock.Anything, int64(42), models.NotifyAppointmentRejected, mock.Anything, mock.Anything).Return(nil)

		rejected, err := service.Reject(context.Background(), 30, "No capacity")

		require.NoError(t, err)
		assert.Equal(t, models.AppointmentCancelled, rejected.Status)
		require.NotNil(t, rejected.RejectedAt)
		assert.Equal(t, "No capacity", rejected.RejectionReason)
	})

	t.Run("confirmed appointments cannot be rejected", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := &models.Appointment{ID: 31, Status: models.AppointmentConfirmed}

		store.On("GetByID", mock.Anything, uint(31)).Return(appointment, nil)

		_, err := service.Reject(context.Background(), 31, "late")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestRescheduleAppointment(t *testing.T) {
	t.Run("moves the slot and stamps the reschedule", func(t *testing.T) {
		service, store, _, availability, notifier := setupAppointmentTest()
		appointment := &models.Appointment{
			ID:        40,
			PatientID: 42,
			Date:      "2026-09-10",
			Time:      "09:30",
			Status:    models.AppointmentScheduled,
		}

		store.On("GetByID", mock.Anything, uint(40)).Return(appointment, nil)
		availability.On("CheckBookable", mock.Anything, "2026-09-14", "10:00", (*int64)(nil), false).Return(nil)
		store.On("UpdateSlot", mock.Anything, appointment).Return(nil)
		notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		rescheduled, err := service.Reschedule(context.Background(), 40, "2026-09-14", "10:00", "Lecture moved", 42, false)

		require.NoError(t, err)
		assert.Equal(t, "2026-09-14", rescheduled.Date)
		assert.Equal(t, "10:00", rescheduled.Time)
		require.NotNil(t, rescheduled.RescheduledAt)
		assert.Equal(t, "Lecture moved", rescheduled.RescheduleReason)
	})

	t.Run("new date is validated against the booking rules", func(t *testing.T) {
		service, store, _, availability, _ := setupAppointmentTest()
		appointment := &models.Appointment{
			ID:        41,
			PatientID: 42,
			Date:      "2026-09-10",
			Time:      "09:30",
			Status:    models.AppointmentScheduled,
		}

		store.On("GetByID", mock.Anything, uint(41)).Return(appointment, nil)
		availability.On("CheckBookable", mock.Anything, "2026-09-12", "10:00", (*int64)(nil), false).Return(ErrNotWorkingDay)

		_, err := service.Reschedule(context.Background(), 41, "2026-09-12", "10:00", "", 42, false)

		assert.ErrorIs(t, err, ErrNotWorkingDay)
		store.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything)
		assert.Equal(t, "2026-09-10", appointment.Date)
	})

	t.Run("terminal appointments cannot be rescheduled", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := &models.Appointment{ID: 42, Status: models.AppointmentNoShow}

		store.On("GetByID", mock.Anything, uint(42)).Return(appointment, nil)

		_, err := service.Reschedule(context.Background(), 42, "2026-09-14", "10:00", "", 1, true)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("patients cannot move someone else's appointment", func(t *testing.T) {
		service, store, _, availability, _ := setupAppointmentTest()
		appointment := &models.Appointment{
			ID:        43,
			PatientID: 42,
			Date:      "2026-09-10",
			Time:      "09:30",
			Status:    models.AppointmentScheduled,
		}

		store.On("GetByID", mock.Anything, uint(43)).Return(appointment, nil)

		_, err := service.Reschedule(context.Background(), 43, "2026-09-14", "10:00", "", 77, false)

		assert.ErrorIs(t, err, ErrNotOwner)
		availability.AssertNotCalled(t, "CheckBookable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("confirmed to completed stamps completed_at", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := &models.Appointment{ID: 50, Status: models.AppointmentConfirmed}

		store.On("GetByID", mock.Anything, uint(50)).Return(appointment, nil)
		store.On("Update", mock.Anything, appointment).Return(nil)

		updated, err := service.UpdateStatus(context.Background(), 50, models.AppointmentCompleted)

		require.NoError(t, err)
		assert.Equal(t, models.AppointmentCompleted, updated.Status)
		require.NotNil(t, updated.CompletedAt)
	})

	t.Run("confirmed to no_show is legal", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := &models.Appointment{ID: 51, Status: models.AppointmentConfirmed}

		store.On("GetByID", mock.Anything, uint(51)).Return(appointment, nil)
		store.On("Update", mock.Anything, appointment).Return(nil)

		updated, err := service.UpdateStatus(context.Background(), 51, models.AppointmentNoShow)

		require.NoError(t, err)
		assert.Equal(t, models.AppointmentNoShow, updated.Status)
	})

	t.Run("completed back to scheduled is refused", func(t *testing.T) {
		service, _, _, _, _ := setupAppointmentTest()

		_, err := service.UpdateStatus(context.Background(), 52, models.AppointmentScheduled)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status is refused", func(t *testing.T) {
		service, _, _, _, _ := setupAppointmentTest()

		_, err := service.UpdateStatus(context.Background(), 53, "archived")
		assert.ErrorIs(t, err, ErrInvalidStatusValue)
	})

	t.Run("cancellation must go through the cancel endpoint", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()

		_, err := service.UpdateStatus(context.Background(), 54, models.AppointmentCancelled)

		assert.ErrorIs(t, err, ErrInvalidTransition)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("confirmation must go through the confirm endpoint", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()

		_, err := service.UpdateStatus(context.Background(), 55, models.AppointmentConfirmed)

		assert.ErrorIs(t, err, ErrInvalidTransition)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAssignDoctor(t *testing.T) {
	t.Run("assignment clears the reassignment flag and notifies both sides", func(t *testing.T) {
		service, store, _, availability, notifier := setupAppointmentTest()
		doctorID := int64(7)
		appointment := &models.Appointment{
			ID:                60,
			PatientID:         42,
			Date:              "2026-09-10",
			Time:              "09:30",
			Status:            models.AppointmentScheduled,
			NeedsReassignment: true,
		}

		store.On("GetByID", mock.Anything, uint(60)).Return(appointment, nil)
		availability.On("CheckBookable", mock.Anything, "2026-09-10", "09:30", &doctorID, false).Return(nil)
		store.On("UpdateSlot", mock.Anything, appointment).Return(nil)
		notifier.On("Notify", mock.Anything, doctorID, models.NotifyAppointmentAssigned, mock.Anything, mock.Anything).Return(nil)
		notifier.On("Notify", mock.Anything, int64(42), models.NotifyAppointmentAssigned, mock.Anything, mock.Anything).Return(nil)

		assigned, err := service.AssignDoctor(context.Background(), 60, doctorID)

		require.NoError(t, err)
		require.NotNil(t, assigned.DoctorID)
		assert.Equal(t, doctorID, *assigned.DoctorID)
		assert.False(t, assigned.NeedsReassignment)
		require.NotNil(t, assigned.AssignedAt)
		notifier.AssertExpectations(t)
	})

	t.Run("terminal appointments cannot be assigned", func(t *testing.T) {
		service, store, _, _, _ := setupAppointmentTest()
		appointment := &models.Appointment{ID: 61, Status: models.AppointmentCancelled}

		store.On("GetByID", mock.Anything, uint(61)).Return(appointment, nil)

		_, err := service.AssignDoctor(context.Background(), 61, 7)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}
