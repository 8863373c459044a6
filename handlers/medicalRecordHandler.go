package handlers

import (
	"strconv"

	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

type MedicalRecordHandler struct {
	service *services.MedicalRecordService
}

func NewMedicalRecordHandler(service *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	var record models.MedicalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	// Doctors write records under their own name.
	if role == models.RoleDoctor {
		record.DoctorID = userID
	}

	if err := h.service.Create(c.Request.Context(), &record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, record)
}

func (h *MedicalRecordHandler) GetMedicalRecordByID(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("record_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid record ID"})
		return
	}

	record, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(404, gin.H{"error": "Medical record not found"})
		return
	}
	// Patients only read their own records.
	if !isStaffRole(role) && record.PatientID != userID {
		c.JSON(403, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(200, record)
}

// GetMedicalRecords lists records scoped to the caller: patients their own,
// doctors the ones they authored, staff by explicit patient filter.
func (h *MedicalRecordHandler) GetMedicalRecords(c *gin.Context) {
	userID, role, ok := actor(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if !isStaffRole(role) {
		records, err := h.service.ListByPatient(ctx, userID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, records)
		return
	}

	if patientIDStr := c.Query("patient_id"); patientIDStr != "" {
		patientID, err := strconv.ParseInt(patientIDStr, 10, 64)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid patient ID"})
			return
		}
		records, err := h.service.ListByPatient(ctx, patientID)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, records)
		return
	}

	records, err := h.service.ListByDoctor(ctx, userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, records)
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("record_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid record ID"})
		return
	}

	existing, err := h.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(404, gin.H{"error": "Medical record not found"})
		return
	}

	var record models.MedicalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	record.ID = uint(id)
	record.PatientID = existing.PatientID
	record.DoctorID = existing.DoctorID
	record.CreatedAt = existing.CreatedAt

	if err := h.service.Update(c.Request.Context(), &record); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, record)
}

func (h *MedicalRecordHandler) DeleteMedicalRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("record_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid record ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Medical record deleted"})
}
