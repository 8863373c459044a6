package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"UniClinic/database"
	"UniClinic/models"

	"gorm.io/gorm"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := database.DB.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := database.DB.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return &notification, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db := database.DB.Where("user_id = ?", userID)
	if unreadOnly {
		db = db.Where("read = ?", false)
	}

	var notifications []models.Notification
	if err := db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead stamps a notification read. Re-marking an already-read row is a
// no-op and leaves read_at unchanged.
func (r *NotificationRepository) MarkRead(ctx context.Context, id uint, userID int64) (*models.Notification, error) {
	var notification models.Notification
	err := database.DB.First(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.Read {
		return &notification, nil
	}

	notification.MarkRead(time.Now())
	if err := database.DB.Save(&notification).Error; err != nil {
		return nil, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return &notification, nil
}

// MarkAllRead stamps every unread notification for the user.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	now := time.Now()
	err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Updates(map[string]interface{}{"read": true, "read_at": now}).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint, userID int64) error {
	if err := database.DB.Delete(&models.Notification{}, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
