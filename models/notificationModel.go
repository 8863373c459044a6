package models

import (
	"time"
)

// Notification types.
const (
	NotifyAppointmentAssigned    = "appointment_assigned"
	NotifyAppointmentConfirmed   = "appointment_confirmed"
	NotifyAppointmentCancelled   = "appointment_cancelled"
	NotifyAppointmentRescheduled = "appointment_rescheduled"
	NotifyAppointmentRejected    = "appointment_rejected"
	NotifySystem                 = "system"
)

// Notification model
type Notification struct {
	ID        uint       `gorm:"primaryKey;autoIncrement;column:id;index" json:"id"`
	UserID    int64      `gorm:"column:user_id;not null;index" json:"user_id"`
	Type      string     `gorm:"size:50;column:type;not null" json:"type"`
	Title     string     `gorm:"size:255;column:title;not null" json:"title"`
	Message   string     `gorm:"type:text;column:message;not null" json:"message"`
	Read      bool       `gorm:"column:read;default:false;index" json:"read"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	User      User       `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

// MarkRead stamps the notification read. Idempotent: a second call leaves
// read_at untouched.
func (n *Notification) MarkRead(now time.Time) {
	if n.Read {
		return
	}
	n.Read = true
	n.ReadAt = &now
}
