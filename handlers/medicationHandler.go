package handlers

import (
	"strconv"

	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

type MedicationHandler struct {
	service *services.MedicationService
}

func NewMedicationHandler(service *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	var medication models.Medication
	if err := c.ShouldBindJSON(&medication); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	// Patients track their own medication; staff record it for a patient.
	if !isStaffRole(role) {
		medication.PatientID = userID
	}

	if err := h.service.Create(c.Request.Context(), &medication); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, medication)
}

func (h *MedicationHandler) GetMedications(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	patientID := userID
	if isStaffRole(role) {
		patientIDStr := c.Query("patient_id")
		if patientIDStr == "" {
			c.JSON(400, gin.H{"error": "patient_id is required"})
			return
		}
		var err error
		patientID, err = strconv.ParseInt(patientIDStr, 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid patient ID"})
			return
		}
	}

	var (
		medications []models.Medication
		err         error
	)
	if c.Query("active") == "true" {
		medications, err = h.service.ListActiveByPatient(c.Request.Context(), patientID)
	} else {
		medications, err = h.service.ListByPatient(c.Request.Context(), patientID)
	}
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, medications)
}

// UpdateMedicationStatus moves a medication between active, discontinued
// and completed.
func (h *MedicationHandler) UpdateMedicationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("medication_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid medication ID"})
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	medication, err := h.service.UpdateStatus(c.Request.Context(), uint(id), body.Status)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, medication)
}

func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("medication_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid medication ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Medication deleted"})
}
