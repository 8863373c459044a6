package controllers

import (
	"UniClinic/handlers"
	"UniClinic/middlewares"
	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

// ClinicHandlers bundles the handlers wired into the clinic route surface.
type ClinicHandlers struct {
	Users services.UserService

	Appointment   *handlers.AppointmentHandler
	Profile       *handlers.ProfileHandler
	MedicalRecord *handlers.MedicalRecordHandler
	Prescription  *handlers.PrescriptionHandler
	Medication    *handlers.MedicationHandler
	Notification  *handlers.NotificationHandler
	Schedule      *handlers.ScheduleHandler
	Department    *handlers.DepartmentHandler
	Settings      *handlers.SettingsHandler
	Dashboard     *handlers.DashboardHandler
	Admin         *handlers.AdminHandler
}

// SetupClinicRoutes registers every token-protected clinic route, gated per
// role the way each operation requires.
func SetupClinicRoutes(router *gin.Engine, h *ClinicHandlers) {
	auth := middlewares.TokenAuthMiddleware()

	// Medical card (self-service).
	profile := router.Group("/profile").Use(auth)
	{
		profile.GET("", h.Profile.GetOwnProfile)
		profile.PUT("", h.Profile.SaveOwnProfile)
		profile.GET("/completeness", h.Profile.GetCompleteness)
	}

	// Appointment lifecycle.
	appointments := router.Group("/appointments").Use(auth)
	{
		appointments.POST("", middlewares.RoleAuthMiddleware(
			models.RoleStudent, models.RoleAcademicStaff,
			models.RoleDoctor, models.RoleClinicalStaff,
		), h.Appointment.CreateAppointment)
		appointments.GET("", h.Appointment.GetAppointments)
		appointments.GET("/:appointment_id", h.Appointment.GetAppointmentByID)
		appointments.PUT("/:appointment_id/reschedule", h.Appointment.RescheduleAppointment)
		appointments.PUT("/:appointment_id/cancel", h.Appointment.CancelAppointment)

		appointments.PUT("/:appointment_id/confirm", middlewares.RoleAuthMiddleware(
			models.RoleDoctor, models.RoleClinicalStaff,
		), h.Appointment.ConfirmAppointment)
		appointments.PUT("/:appointment_id/reject", middlewares.RoleAuthMiddleware(
			models.RoleDoctor, models.RoleClinicalStaff,
		), h.Appointment.RejectAppointment)
		appointments.PUT("/:appointment_id/status", middlewares.RoleAuthMiddleware(
			models.RoleDoctor, models.RoleClinicalStaff,
		), h.Appointment.UpdateAppointmentStatus)
		appointments.PUT("/:appointment_id/assign", middlewares.RoleAuthMiddleware(
			models.RoleClinicalStaff,
		), h.Appointment.AssignDoctor)
		appointments.DELETE("/:appointment_id", middlewares.RoleAuthMiddleware(), h.Appointment.DeleteAppointment)
	}

	// Staff work queues.
	queues := router.Group("/clinical/queues").Use(auth, middlewares.RoleAuthMiddleware(
		models.RoleDoctor, models.RoleClinicalStaff,
	))
	{
		queues.GET("/unassigned", h.Appointment.GetUnassignedQueue)
		queues.GET("/reassignment", h.Appointment.GetReassignmentQueue)
	}

	// Clinical documentation.
	records := router.Group("/medical-records").Use(auth)
	{
		records.GET("", h.MedicalRecord.GetMedicalRecords)
		records.GET("/:record_id", h.MedicalRecord.GetMedicalRecordByID)
		records.POST("", middlewares.RoleAuthMiddleware(
			models.RoleDoctor, models.RoleClinicalStaff,
		), h.MedicalRecord.CreateMedicalRecord)
		records.PUT("/:record_id", middlewares.RoleAuthMiddleware(
			models.RoleDoctor, models.RoleClinicalStaff,
		), h.MedicalRecord.UpdateMedicalRecord)
		records.DELETE("/:record_id", middlewares.RoleAuthMiddleware(), h.MedicalRecord.DeleteMedicalRecord)
	}

	prescriptions := router.Group("/prescriptions").Use(auth)
	{
		prescriptions.GET("", h.Prescription.GetPrescriptions)
		prescriptions.GET("/:prescription_id", h.Prescription.GetPrescriptionByID)
		prescriptions.POST("", middlewares.RoleAuthMiddleware(
			models.RoleDoctor,
		), h.Prescription.CreatePrescription)
		prescriptions.PUT("/:prescription_id", middlewares.RoleAuthMiddleware(
			models.RoleDoctor,
		), h.Prescription.UpdatePrescription)
		prescriptions.DELETE("/:prescription_id", middlewares.RoleAuthMiddleware(), h.Prescription.DeletePrescription)
	}

	medications := router.Group("/medications").Use(auth)
	{
		medications.GET("", h.Medication.GetMedications)
		medications.POST("", h.Medication.CreateMedication)
		medications.PUT("/:medication_id/status", middlewares.RoleAuthMiddleware(
			models.RoleDoctor, models.RoleClinicalStaff,
		), h.Medication.UpdateMedicationStatus)
		medications.DELETE("/:medication_id", middlewares.RoleAuthMiddleware(
			models.RoleDoctor, models.RoleClinicalStaff,
		), h.Medication.DeleteMedication)
	}

	// Alerts.
	notifications := router.Group("/notifications").Use(auth)
	{
		notifications.GET("", h.Notification.ListNotifications)
		notifications.GET("/unread-count", h.Notification.UnreadCount)
		notifications.PUT("/:notification_id/read", h.Notification.MarkRead)
		notifications.PUT("/read-all", h.Notification.MarkAllRead)
		notifications.DELETE("/:notification_id", h.Notification.DeleteNotification)
	}

	// Patient lookups for clinical staff.
	patients := router.Group("/patients").Use(auth, middlewares.RoleAuthMiddleware(
		models.RoleDoctor, models.RoleClinicalStaff,
	))
	{
		patients.GET("/:patient_id/profile", h.Profile.GetPatientProfile)
	}

	// Organizational data.
	departments := router.Group("/departments").Use(auth)
	{
		departments.GET("", h.Department.GetAllDepartments)
		departments.GET("/:department_id", h.Department.GetDepartmentByID)
		departments.POST("", middlewares.RoleAuthMiddleware(), h.Department.CreateDepartment)
		departments.PUT("/:department_id", middlewares.RoleAuthMiddleware(), h.Department.UpdateDepartment)
		departments.DELETE("/:department_id", middlewares.RoleAuthMiddleware(), h.Department.DeleteDepartment)
	}

	// Schedules and holidays are gated on the schedule-management
	// permission so admins can delegate via per-user grants.
	schedules := router.Group("/schedules").Use(auth, middlewares.PermissionAuthMiddleware(
		h.Users, models.PermManageSchedules,
	))
	{
		schedules.GET("", h.Schedule.GetSchedules)
		schedules.GET("/:user_id", h.Schedule.GetScheduleByUser)
		schedules.PUT("", h.Schedule.SaveSchedule)
		schedules.DELETE("/:user_id", h.Schedule.DeleteSchedule)
	}

	holidays := router.Group("/holidays").Use(auth)
	{
		holidays.GET("", h.Schedule.GetHolidays)
		holidays.POST("", middlewares.PermissionAuthMiddleware(
			h.Users, models.PermManageSchedules,
		), h.Schedule.CreateHoliday)
		holidays.PUT("/:holiday_id", middlewares.PermissionAuthMiddleware(
			h.Users, models.PermManageSchedules,
		), h.Schedule.UpdateHoliday)
		holidays.DELETE("/:holiday_id", middlewares.PermissionAuthMiddleware(
			h.Users, models.PermManageSchedules,
		), h.Schedule.DeleteHoliday)
	}

	// Clinic settings: readable by any signed-in user, writable by admins.
	router.GET("/clinic-settings", auth, h.Settings.GetClinicSettings)
	router.PUT("/clinic-settings", auth, middlewares.RoleAuthMiddleware(), h.Settings.UpdateClinicSettings)

	// Role dashboards.
	router.GET("/student/dashboard", auth, middlewares.RoleAuthMiddleware(
		models.RoleStudent,
	), h.Dashboard.PatientDashboard)
	router.GET("/academic-staff/dashboard", auth, middlewares.RoleAuthMiddleware(
		models.RoleAcademicStaff,
	), h.Dashboard.PatientDashboard)
	router.GET("/doctor/dashboard", auth, middlewares.RoleAuthMiddleware(
		models.RoleDoctor,
	), h.Dashboard.DoctorDashboard)
	router.GET("/clinical/dashboard", auth, middlewares.RoleAuthMiddleware(
		models.RoleClinicalStaff,
	), h.Dashboard.StaffDashboard)
	router.GET("/admin/dashboard", auth, middlewares.RoleAuthMiddleware(), h.Dashboard.StaffDashboard)

	// User administration.
	admin := router.Group("/admin").Use(auth, middlewares.RoleAuthMiddleware())
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/users/:user_id", h.Admin.GetUser)
		admin.POST("/users", h.Admin.CreateUser)
		admin.PUT("/users/:user_id/status", h.Admin.UpdateUserStatus)
		admin.GET("/users/:user_id/permissions", h.Admin.GetUserPermissions)
		admin.POST("/users/:user_id/permissions", h.Admin.GrantPermission)
		admin.DELETE("/users/:user_id/permissions/:permission_id", h.Admin.RevokePermission)
		admin.DELETE("/users/:user_id", h.Admin.DeleteUser)
		admin.GET("/doctors", h.Admin.ListDoctors)
	}

	// System settings: superadmin only.
	superadmin := router.Group("/superadmin").Use(auth, middlewares.RoleAuthMiddleware(
		models.RoleSuperAdmin,
	))
	{
		superadmin.GET("/settings", h.Settings.GetAllSections)
		superadmin.GET("/settings/:section", h.Settings.GetSection)
		superadmin.PUT("/settings/:section", h.Settings.UpdateSection)
	}
}
