package handlers

import (
	"strconv"

	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if role == models.RoleDoctor {
		prescription.DoctorID = userID
	}

	if err := h.service.Create(c.Request.Context(), &prescription); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, prescription)
}

func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("prescription_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid prescription ID"})
		return
	}

	prescription, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if prescription == nil {
		c.JSON(404, gin.H{"error": "Prescription not found"})
		return
	}
	if !isStaffRole(role) && prescription.PatientID != userID {
		c.JSON(403, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(200, prescription)
}

func (h *PrescriptionHandler) GetPrescriptions(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if !isStaffRole(role) {
		prescriptions, err := h.service.ListByPatient(ctx, userID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, prescriptions)
		return
	}

	if patientIDStr := c.Query("patient_id"); patientIDStr != "" {
		patientID, err := strconv.ParseInt(patientIDStr, 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid patient ID"})
			return
		}
		prescriptions, err := h.service.ListByPatient(ctx, patientID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, prescriptions)
		return
	}

	prescriptions, err := h.service.ListByDoctor(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, prescriptions)
}

func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("prescription_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid prescription ID"})
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(404, gin.H{"error": "Prescription not found"})
		return
	}

	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	prescription.ID = uint(id)
	prescription.PatientID = existing.PatientID
	prescription.DoctorID = existing.DoctorID
	prescription.CreatedAt = existing.CreatedAt

	if err := h.service.Update(c.Request.Context(), &prescription); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, prescription)
}

func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("prescription_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid prescription ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Prescription deleted"})
}
