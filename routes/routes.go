package routes

import (
	"net/http"

	"UniClinic/cache"
	"UniClinic/config"
	"UniClinic/controllers"
	"UniClinic/handlers"
	"UniClinic/middlewares"
	"UniClinic/repositories"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://clinic.university.edu"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Access-Token"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, cache)
	profileRepo := repositories.NewProfileRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	scheduleRepo := repositories.NewScheduleRepository(cache)
	holidayRepo := repositories.NewHolidayRepository(cache)
	departmentRepo := repositories.NewDepartmentRepository()
	medicalRecordRepo := repositories.NewMedicalRecordRepository(cache)
	prescriptionRepo := repositories.NewPrescriptionRepository()
	medicationRepo := repositories.NewMedicationRepository()
	notificationRepo := repositories.NewNotificationRepository()
	settingsRepo := repositories.NewSettingsRepository(cache)

	// Initialize services
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(profileRepo)
	notificationService := services.NewNotificationService(notificationRepo, userRepo, settingsRepo)
	settingsService := services.NewSettingsService(settingsRepo)
	availabilityService := services.NewAvailabilityService(scheduleRepo, holidayRepo, settingsRepo, userRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, profileRepo, availabilityService, notificationService)
	scheduleService := services.NewScheduleService(scheduleRepo)
	holidayService := services.NewHolidayService(holidayRepo)
	departmentService := services.NewDepartmentService(departmentRepo)
	medicalRecordService := services.NewMedicalRecordService(medicalRecordRepo)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo)
	medicationService := services.NewMedicationService(medicationRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	clinicHandlers := &controllers.ClinicHandlers{
		Users:         userService,
		Appointment:   handlers.NewAppointmentHandler(appointmentService),
		Profile:       handlers.NewProfileHandler(profileService),
		MedicalRecord: handlers.NewMedicalRecordHandler(medicalRecordService),
		Prescription:  handlers.NewPrescriptionHandler(prescriptionService),
		Medication:    handlers.NewMedicationHandler(medicationService),
		Notification:  handlers.NewNotificationHandler(notificationService),
		Schedule:      handlers.NewScheduleHandler(scheduleService, holidayService),
		Department:    handlers.NewDepartmentHandler(departmentService),
		Settings:      handlers.NewSettingsHandler(settingsService),
		Dashboard:     handlers.NewDashboardHandler(appointmentService, notificationService, profileService, settingsService),
		Admin:         handlers.NewAdminHandler(userService),
	}

	// Register routes
	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupClinicRoutes(router, clinicHandlers)
	controllers.SetupRootRoutes(router)

	return router
}
