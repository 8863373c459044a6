package handlers

import (
	"strconv"

	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service *services.ProfileService
}

func NewProfileHandler(service *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetOwnProfile returns the caller's medical card, or an empty one when it
// has not been saved yet.
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		profile = &models.Profile{UserID: userID}
	}
	c.JSON(200, gin.H{
		"profile":  profile,
		"complete": profile.IsComplete(),
		"missing":  profile.MissingFields(),
	})
}

// SaveOwnProfile upserts the caller's medical card.
func (h *ProfileHandler) SaveOwnProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var profile models.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	profile.UserID = userID

	if err := h.service.Save(c.Request.Context(), &profile); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, profile)
}

// GetPatientProfile returns another user's medical card for clinical staff.
func (h *ProfileHandler) GetPatientProfile(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.Param("patient_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid patient ID"})
		return
	}

	profile, err := h.service.GetByUserID(c.Request.Context(), patientID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(404, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(200, profile)
}

// GetCompleteness exposes the booking gate state to the dashboards.
func (h *ProfileHandler) GetCompleteness(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	complete, missing, err := h.service.Completeness(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"complete": complete, "missing": missing})
}
