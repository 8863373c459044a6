package handlers

import (
	"strconv"

	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	service *services.DepartmentService
}

func NewDepartmentHandler(service *services.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if department.Name == "" || department.Code == "" {
		c.JSON(400, gin.H{"error": "name and code are required"})
		return
	}

	if err := h.service.Create(c.Request.Context(), &department); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, department)
}

func (h *DepartmentHandler) GetDepartmentByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("department_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid department ID"})
		return
	}

	department, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if department == nil {
		c.JSON(404, gin.H{"error": "Department not found"})
		return
	}
	c.JSON(200, department)
}

func (h *DepartmentHandler) GetAllDepartments(c *gin.Context) {
	departments, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, departments)
}

func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("department_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid department ID"})
		return
	}

	var department models.Department
	if err := c.ShouldBindJSON(&department); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	department.ID = id

	if err := h.service.Update(c.Request.Context(), &department); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, department)
}

func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("department_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid department ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Department deleted"})
}
