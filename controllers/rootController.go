package controllers

import (
	"context"
	"net/http"
	"time"

	"UniClinic/database"
	"UniClinic/models"

	"github.com/gin-gonic/gin"
)

// rootHandler handles requests to the root path
func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "university-health-clinic-api"})
}

// healthHandler reports liveness of the service and its backing stores.
func healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"status": "ok"}
	code := http.StatusOK

	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
		status["database"] = "down"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	} else {
		status["database"] = "up"
	}

	if database.RedisClient == nil || database.RedisClient.Ping(ctx).Err() != nil {
		status["redis"] = "down"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	} else {
		status["redis"] = "up"
	}

	c.JSON(code, status)
}

// rolesHandler publicly enumerates the role labels.
func rolesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": []string{
		models.RoleStudent,
		models.RoleDoctor,
		models.RoleClinicalStaff,
		models.RoleAcademicStaff,
		models.RoleAdmin,
		models.RoleSuperAdmin,
	}})
}

// SetupRootRoutes sets up the public service routes.
func SetupRootRoutes(router *gin.Engine) {
	router.GET("/", rootHandler)
	router.GET("/health", healthHandler)
	router.GET("/roles", rolesHandler)
}
