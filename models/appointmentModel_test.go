package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentTransitions(t *testing.T) {
	t.Run("scheduled can be confirmed or cancelled", func(t *testing.T) {
		appointment := Appointment{Status: AppointmentScheduled}

		assert.True(t, appointment.CanTransitionTo(AppointmentConfirmed))
		assert.True(t, appointment.CanTransitionTo(AppointmentCancelled))
		assert.False(t, appointment.CanTransitionTo(AppointmentCompleted))
		assert.False(t, appointment.CanTransitionTo(AppointmentNoShow))
	})

	t.Run("confirmed can complete, cancel or no-show", func(t *testing.T) {
		appointment := Appointment{Status: AppointmentConfirmed}

		assert.True(t, appointment.CanTransitionTo(AppointmentCompleted))
		assert.True(t, appointment.CanTransitionTo(AppointmentCancelled))
		assert.True(t, appointment.CanTransitionTo(AppointmentNoShow))
		assert.False(t, appointment.CanTransitionTo(AppointmentScheduled))
	})

	t.Run("terminal states have no outgoing transitions", func(t *testing.T) {
		for _, status := range []string{AppointmentCompleted, AppointmentCancelled, AppointmentNoShow} {
			appointment := Appointment{Status: status}

			for _, target := range []string{
				AppointmentScheduled, AppointmentConfirmed, AppointmentCompleted,
				AppointmentCancelled, AppointmentNoShow,
			} {
				assert.False(t, appointment.CanTransitionTo(target),
					"%s -> %s should be refused", status, target)
			}
			assert.True(t, appointment.IsTerminal())
		}
	})

	t.Run("completed cannot go back to scheduled", func(t *testing.T) {
		appointment := Appointment{Status: AppointmentCompleted}
		assert.False(t, appointment.CanTransitionTo(AppointmentScheduled))
	})
}

func TestAppointmentIsPending(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentScheduled}).IsPending())
	assert.True(t, (&Appointment{Status: AppointmentConfirmed}).IsPending())
	assert.False(t, (&Appointment{Status: AppointmentCancelled}).IsPending())
	assert.False(t, (&Appointment{Status: AppointmentCompleted}).IsPending())
	assert.False(t, (&Appointment{Status: AppointmentNoShow}).IsPending())
}

func TestValidSlot(t *testing.T) {
	assert.True(t, ValidSlot("09:00"))
	assert.True(t, ValidSlot("16:30"))
	assert.False(t, ValidSlot("08:30"))
	assert.False(t, ValidSlot("17:00"))
	assert.False(t, ValidSlot("09:15"))
	assert.False(t, ValidSlot(""))
}

func TestValidStatusAndUrgency(t *testing.T) {
	assert.True(t, ValidStatus(AppointmentScheduled))
	assert.True(t, ValidStatus(AppointmentNoShow))
	assert.False(t, ValidStatus("pending"))

	assert.True(t, ValidUrgency(UrgencyNormal))
	assert.True(t, ValidUrgency(UrgencyEmergency))
	assert.False(t, ValidUrgency("critical"))
}
