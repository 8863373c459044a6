package handlers

import (
	"strconv"

	"UniClinic/middlewares"
	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// actor returns the authenticated user's id and role from the request
// context.
func actor(c *gin.Context) (int64, string, bool) {
	userIDStr, err := middlewares.ExtractUserIDFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "User not found in context"})
		return 0, "", false
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		c.JSON(500, gin.H{"error": "Invalid user ID"})
		return 0, "", false
	}
	role, err := middlewares.ExtractUserRoleFromContext(c.Request.Context())
	if err != nil {
		c.JSON(401, gin.H{"error": "User role not found in context"})
		return 0, "", false
	}
	return userID, role, true
}

func isStaffRole(role string) bool {
	switch role {
	case models.RoleDoctor, models.RoleClinicalStaff, models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

func appointmentID(c *gin.Context) (uint, bool) {
	idStr := c.Param("appointment_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid appointment ID"})
		return 0, false
	}
	return uint(id), true
}

// CreateAppointment books an appointment. Patients book for themselves;
// staff may book on behalf of any patient (walk-ins included).
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	byStaff := isStaffRole(role)
	if !byStaff {
		appointment.PatientID = userID
	} else if appointment.PatientID == 0 {
		c.JSON(400, gin.H{"error": "patient_id is required"})
		return
	}

	if err := h.service.Create(c.Request.Context(), &appointment, byStaff); err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	appointment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if appointment == nil {
		c.JSON(404, gin.H{"error": "Appointment not found"})
		return
	}
	// Patients only see their own appointments.
	if !isStaffRole(role) && appointment.PatientID != userID {
		c.JSON(403, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(200, appointment)
}

// GetAppointments lists appointments scoped to the caller's role: patients
// see their own, doctors their assigned ones, other staff everything.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	var (
		appointments []models.Appointment
		err          error
	)
	switch {
	case !isStaffRole(role):
		appointments, err = h.service.ListByPatient(c.Request.Context(), userID)
	case role == models.RoleDoctor:
		appointments, err = h.service.ListByDoctor(c.Request.Context(), userID)
	default:
		if status := c.Query("status"); status != "" {
			appointments, err = h.service.ListByStatus(c.Request.Context(), status)
		} else {
			appointments, err = h.service.GetAll(c.Request.Context())
		}
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

// GetReassignmentQueue lists cancelled-doctor appointments awaiting staff
// follow-up.
func (h *AppointmentHandler) GetReassignmentQueue(c *gin.Context) {
	appointments, err := h.service.ListNeedingReassignment(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

// GetUnassignedQueue lists "any available doctor" requests with no doctor
// attached yet.
func (h *AppointmentHandler) GetUnassignedQueue(c *gin.Context) {
	appointments, err := h.service.ListUnassigned(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	appointment, err := h.service.Confirm(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) RejectAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if body.Reason == "" {
		c.JSON(400, gin.H{"error": "rejection reason is required"})
		return
	}

	appointment, err := h.service.Reject(c.Request.Context(), id, body.Reason)
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var body struct {
		Date   string `json:"date"`
		Time   string `json:"time"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.service.Reschedule(c.Request.Context(), id, body.Date, body.Time, body.Reason, userID, isStaffRole(role))
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.service.Cancel(c.Request.Context(), id, userID, body.Reason, isStaffRole(role))
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

// AssignDoctor attaches a doctor to a pending or reassignment-flagged
// appointment.
func (h *AppointmentHandler) AssignDoctor(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var body struct {
		DoctorID int64 `json:"doctor_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if body.DoctorID == 0 {
		c.JSON(400, gin.H{"error": "doctor_id is required"})
		return
	}

	appointment, err := h.service.AssignDoctor(c.Request.Context(), id, body.DoctorID)
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

// UpdateAppointmentStatus sets the doctor/staff terminal markers
// (completed, no_show) via the explicit status endpoint.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		c.JSON(statusForAppointmentError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}
