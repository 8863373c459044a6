package handlers

import (
	"strconv"

	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler manages staff working-day templates and academic
// holidays.
type ScheduleHandler struct {
	schedules *services.ScheduleService
	holidays  *services.HolidayService
}

func NewScheduleHandler(schedules *services.ScheduleService, holidays *services.HolidayService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules, holidays: holidays}
}

func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	schedules, err := h.schedules.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, schedules)
}

func (h *ScheduleHandler) GetScheduleByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	schedule, err := h.schedules.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if schedule == nil {
		c.JSON(404, gin.H{"error": "Schedule not found"})
		return
	}
	c.JSON(200, schedule)
}

func (h *ScheduleHandler) SaveSchedule(c *gin.Context) {
	var schedule models.StaffSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := h.schedules.Save(c.Request.Context(), &schedule); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, schedule)
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.schedules.Delete(c.Request.Context(), userID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Schedule deleted"})
}

func (h *ScheduleHandler) GetHolidays(c *gin.Context) {
	holidays, err := h.holidays.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, holidays)
}

func (h *ScheduleHandler) CreateHoliday(c *gin.Context) {
	var holiday models.AcademicHoliday
	if err := c.ShouldBindJSON(&holiday); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := h.holidays.Create(c.Request.Context(), &holiday); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, holiday)
}

func (h *ScheduleHandler) UpdateHoliday(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("holiday_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid holiday ID"})
		return
	}

	existing, err := h.holidays.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		c.JSON(404, gin.H{"error": "Holiday not found"})
		return
	}

	var holiday models.AcademicHoliday
	if err := c.ShouldBindJSON(&holiday); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	holiday.ID = uint(id)
	holiday.CreatedAt = existing.CreatedAt

	if err := h.holidays.Update(c.Request.Context(), &holiday); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, holiday)
}

func (h *ScheduleHandler) DeleteHoliday(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("holiday_id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid holiday ID"})
		return
	}

	if err := h.holidays.Delete(c.Request.Context(), uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Holiday deleted"})
}
