package handlers

import (
	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler aggregates the per-role landing-page data.
type DashboardHandler struct {
	appointments  *services.AppointmentService
	notifications *services.NotificationService
	profiles      *services.ProfileService
	settings      *services.SettingsService
}

func NewDashboardHandler(
	appointments *services.AppointmentService,
	notifications *services.NotificationService,
	profiles *services.ProfileService,
	settings *services.SettingsService,
) *DashboardHandler {
	return &DashboardHandler{
		appointments:  appointments,
		notifications: notifications,
		profiles:      profiles,
		settings:      settings,
	}
}

// PatientDashboard serves students and academic staff: their appointments,
// unread alerts, the profile gate and the clinic notice board.
func (h *DashboardHandler) PatientDashboard(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	appointments, err := h.appointments.ListByPatient(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	unread, err := h.notifications.CountUnread(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	complete, missing, err := h.profiles.Completeness(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	clinic, err := h.settings.GetClinicSettings(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"appointments":     appointments,
		"unread":           unread,
		"profile_complete": complete,
		"profile_missing":  missing,
		"clinic":           clinic,
	})
}

// DoctorDashboard serves doctors: assigned appointments split by status
// plus unread alerts.
func (h *DashboardHandler) DoctorDashboard(c *gin.Context) {
	userID, _, ok := actor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	appointments, err := h.appointments.ListByDoctor(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	counts := map[string]int{}
	for _, appointment := range appointments {
		counts[appointment.Status]++
	}

	unread, err := h.notifications.CountUnread(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"appointments": appointments,
		"counts":       counts,
		"unread":       unread,
	})
}

// StaffDashboard serves clinical staff and admins: the pending queue, the
// unassigned queue and the reassignment backlog.
func (h *DashboardHandler) StaffDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	pending, err := h.appointments.ListByStatus(ctx, models.AppointmentScheduled)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	unassigned, err := h.appointments.ListUnassigned(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	reassignment, err := h.appointments.ListNeedingReassignment(ctx)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"pending":            pending,
		"unassigned":         unassigned,
		"needs_reassignment": reassignment,
	})
}
