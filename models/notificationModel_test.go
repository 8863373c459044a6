package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotificationMarkRead(t *testing.T) {
	t.Run("marks unread notification", func(t *testing.T) {
		notification := Notification{Read: false}
		first := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

		notification.MarkRead(first)

		assert.True(t, notification.Read)
		assert.NotNil(t, notification.ReadAt)
		assert.Equal(t, first, *notification.ReadAt)
	})

	t.Run("re-marking leaves read_at unchanged", func(t *testing.T) {
		notification := Notification{Read: false}
		first := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		second := first.Add(time.Hour)

		notification.MarkRead(first)
		notification.MarkRead(second)

		assert.True(t, notification.Read)
		assert.Equal(t, first, *notification.ReadAt)
	})
}
