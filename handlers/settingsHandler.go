package handlers

import (
	"encoding/json"

	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service *services.SettingsService
}

func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetAllSections(c *gin.Context) {
	settings, err := h.service.GetAllSections(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, settings)
}

func (h *SettingsHandler) GetSection(c *gin.Context) {
	section := c.Param("section")
	if !models.ValidSection(section) {
		c.JSON(400, gin.H{"error": "Unknown settings section"})
		return
	}

	setting, err := h.service.GetSection(c.Request.Context(), section)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if setting == nil {
		c.JSON(404, gin.H{"error": "Settings section not found"})
		return
	}

	value, err := setting.DecodeSection()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"section": section, "value": value, "updated_at": setting.UpdatedAt})
}

// UpdateSection replaces one typed settings section. The payload must
// decode into the section's struct or the update is refused.
func (h *SettingsHandler) UpdateSection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	section := c.Param("section")
	if !models.ValidSection(section) {
		c.JSON(400, gin.H{"error": "Unknown settings section"})
		return
	}

	var body json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.service.UpdateSection(c.Request.Context(), section, string(body), userID)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, setting)
}

func (h *SettingsHandler) GetClinicSettings(c *gin.Context) {
	settings, err := h.service.GetClinicSettings(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, settings)
}

func (h *SettingsHandler) UpdateClinicSettings(c *gin.Context) {
	var settings models.ClinicSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateClinicSettings(c.Request.Context(), &settings); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, settings)
}
