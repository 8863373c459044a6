package services

import (
	"context"
	"log"

	"UniClinic/models"
	"UniClinic/utils"
)

// NotificationStore is the persistence surface for notification rows.
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id uint, userID int64) (*models.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id uint, userID int64) error
}

// EmailSettingsStore provides the email section that gates outbound mail.
type EmailSettingsStore interface {
	GetSection(ctx context.Context, section string) (*models.SystemSetting, error)
}

// NotificationService persists typed notification rows and, when the email
// settings allow it, mirrors them to the user's inbox. The row is the
// source of truth; mail delivery is best-effort.
type NotificationService struct {
	store    NotificationStore
	users    UserStore
	settings EmailSettingsStore
	sendMail func(to, subject, message string) error
}

func NewNotificationService(store NotificationStore, users UserStore, settings EmailSettingsStore) *NotificationService {
	return &NotificationService{
		store:    store,
		users:    users,
		settings: settings,
		sendMail: utils.SendAppointmentEmail,
	}
}

// Notify persists a typed notification row for the user and mirrors it by
// mail when the email settings enable it for this notification type.
func (s *NotificationService) Notify(ctx context.Context, userID int64, notificationType, title, message string) error {
	notification := &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
	}
	if err := s.store.Create(ctx, notification); err != nil {
		return err
	}

	s.mailBestEffort(ctx, userID, notificationType, title, message)
	return nil
}

func (s *NotificationService) mailBestEffort(ctx context.Context, userID int64, notificationType, title, message string) {
	enabled, err := s.emailEnabled(ctx, notificationType)
	if err != nil {
		log.Printf("Failed to read email settings: %v", err)
		return
	}
	if !enabled {
		return
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil || user == nil || user.Email == "" {
		return
	}

	if err := s.sendMail(user.Email, title, message); err != nil {
		log.Printf("Failed to send notification email: %v", err)
	}
}

// emailEnabled maps the notification type onto the email section's
// send_on_book / send_on_cancel switches.
func (s *NotificationService) emailEnabled(ctx context.Context, notificationType string) (bool, error) {
	setting, err := s.settings.GetSection(ctx, models.SettingsEmail)
	if err != nil || setting == nil {
		return false, err
	}
	decoded, err := setting.DecodeSection()
	if err != nil {
		return false, err
	}
	email, ok := decoded.(*models.EmailSettings)
	if !ok {
		return false, nil
	}

	switch notificationType {
	case models.NotifyAppointmentAssigned, models.NotifyAppointmentConfirmed, models.NotifyAppointmentRescheduled:
		return email.SendOnBook, nil
	case models.NotifyAppointmentCancelled, models.NotifyAppointmentRejected:
		return email.SendOnCancel, nil
	}
	return false, nil
}

func (s *NotificationService) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	return s.store.ListByUser(ctx, userID, unreadOnly)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint, userID int64) (*models.Notification, error) {
	return s.store.MarkRead(ctx, id, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) error {
	return s.store.MarkAllRead(ctx, userID)
}

func (s *NotificationService) CountUnread(ctx context.Context, userID int64) (int64, error) {
	return s.store.CountUnread(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id uint, userID int64) error {
	return s.store.Delete(ctx, id, userID)
}
