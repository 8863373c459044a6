package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"UniClinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationStore) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, id uint, userID int64) (*models.Notification, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationStore) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationStore) Delete(ctx context.Context, id uint, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type MockEmailSettingsStore struct {
	mock.Mock
}

func (m *MockEmailSettingsStore) GetSection(ctx context.Context, section string) (*models.SystemSetting, error) {
	args := m.Called(ctx, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SystemSetting), args.Error(1)
}

type sentMail struct {
	to, subject, message string
}

func setupNotificationTest(t *testing.T, email models.EmailSettings) (*NotificationService, *MockNotificationStore, *MockUserStore, *[]sentMail) {
	store := &MockNotificationStore{}
	users := &MockUserStore{}
	settings := &MockEmailSettingsStore{}

	payload, err := json.Marshal(email)
	require.NoError(t, err)
	settings.On("GetSection", mock.Anything, models.SettingsEmail).Return(&models.SystemSetting{
		Section: models.SettingsEmail,
		Value:   string(payload),
	}, nil)

	service := NewNotificationService(store, users, settings)
	var sent []sentMail
	service.sendMail = func(to, subject, message string) error {
		sent = append(sent, sentMail{to, subject, message})
		return nil
	}
	return service, store, users, &sent
}

func TestNotifyEmailMirroring(t *testing.T) {
	t.Run("confirmation mail goes out when booking mail is on", func(t *testing.T) {
		service, store, users, sent := setupNotificationTest(t, models.EmailSettings{SendOnBook: true})

		store.On("Create", mock.Anything, mock.Anything).Return(nil)
		users.On("GetUserByID", mock.Anything, int64(42)).Return(&models.User{
			ID:    42,
			Email: "ayusuf@university.edu",
		}, nil)

		err := service.Notify(context.Background(), 42, models.NotifyAppointmentConfirmed,
			"Appointment confirmed", "Your appointment on 2026-09-10 at 09:30 has been confirmed.")

		require.NoError(t, err)
		require.Len(t, *sent, 1)
		assert.Equal(t, "ayusuf@university.edu", (*sent)[0].to)
		assert.Equal(t, "Appointment confirmed", (*sent)[0].subject)
		store.AssertExpectations(t)
	})

	t.Run("booking mail switched off suppresses the mail but keeps the row", func(t *testing.T) {
		service, store, _, sent := setupNotificationTest(t, models.EmailSettings{SendOnBook: false})

		store.On("Create", mock.Anything, mock.Anything).Return(nil)

		err := service.Notify(context.Background(), 42, models.NotifyAppointmentAssigned,
			"Doctor assigned", "A doctor was assigned.")

		require.NoError(t, err)
		assert.Empty(t, *sent)
		store.AssertExpectations(t)
	})

	t.Run("cancellation mail honors its own switch", func(t *testing.T) {
		service, store, users, sent := setupNotificationTest(t, models.EmailSettings{SendOnBook: false, SendOnCancel: true})

		store.On("Create", mock.Anything, mock.Anything).Return(nil)
		users.On("GetUserByID", mock.Anything, int64(7)).Return(&models.User{
			ID:    7,
			Email: "doctor@university.edu",
		}, nil)

		err := service.Notify(context.Background(), 7, models.NotifyAppointmentCancelled,
			"Appointment cancelled", "The appointment was cancelled.")

		require.NoError(t, err)
		require.Len(t, *sent, 1)
		assert.Equal(t, "doctor@university.edu", (*sent)[0].to)
	})

	t.Run("system notifications never mail", func(t *testing.T) {
		service, store, _, sent := setupNotificationTest(t, models.EmailSettings{SendOnBook: true, SendOnCancel: true})

		store.On("Create", mock.Anything, mock.Anything).Return(nil)

		err := service.Notify(context.Background(), 42, models.NotifySystem, "Maintenance", "Planned downtime.")

		require.NoError(t, err)
		assert.Empty(t, *sent)
	})

	t.Run("mail delivery failure does not fail the notification", func(t *testing.T) {
		service, store, users, _ := setupNotificationTest(t, models.EmailSettings{SendOnBook: true})
		service.sendMail = func(to, subject, message string) error {
			return errors.New("smtp unreachable")
		}

		store.On("Create", mock.Anything, mock.Anything).Return(nil)
		users.On("GetUserByID", mock.Anything, int64(42)).Return(&models.User{
			ID:    42,
			Email: "ayusuf@university.edu",
		}, nil)

		err := service.Notify(context.Background(), 42, models.NotifyAppointmentConfirmed,
			"Appointment confirmed", "Confirmed.")

		require.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("missing email settings row means no mail", func(t *testing.T) {
		store := &MockNotificationStore{}
		users := &MockUserStore{}
		settings := &MockEmailSettingsStore{}
		settings.On("GetSection", mock.Anything, models.SettingsEmail).Return(nil, nil)

		service := NewNotificationService(store, users, settings)
		var sent []sentMail
		service.sendMail = func(to, subject, message string) error {
			sent = append(sent, sentMail{to, subject, message})
			return nil
		}

		store.On("Create", mock.Anything, mock.Anything).Return(nil)

		err := service.Notify(context.Background(), 42, models.NotifyAppointmentConfirmed, "Confirmed", "Confirmed.")

		require.NoError(t, err)
		assert.Empty(t, sent)
	})

	t.Run("store failure is returned and nothing is mailed", func(t *testing.T) {
		service, store, _, sent := setupNotificationTest(t, models.EmailSettings{SendOnBook: true})

		store.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

		err := service.Notify(context.Background(), 42, models.NotifyAppointmentConfirmed, "Confirmed", "Confirmed.")

		assert.Error(t, err)
		assert.Empty(t, *sent)
	})
}
