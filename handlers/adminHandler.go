package handlers

import (
	"fmt"
	"strconv"

	"UniClinic/models"
	"UniClinic/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers user administration: staff account creation, status
// changes, permission overrides and removal.
type AdminHandler struct {
	UserService services.UserService
}

func NewAdminHandler(userService services.UserService) *AdminHandler {
	return &AdminHandler{UserService: userService}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, users)
}

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.UserService.GetUsersByRole(c.Request.Context(), models.RoleDoctor)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, doctors)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.UserService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}
	c.JSON(200, user)
}

// CreateUser creates an account with any role, including staff roles that
// self-registration refuses.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var body struct {
		Username             string `json:"username"`
		Email                string `json:"email"`
		Password             string `json:"password"`
		Role                 string `json:"role"`
		StudentID            string `json:"student_id"`
		StaffNo              string `json:"staff_no"`
		MedicalLicenseNumber string `json:"medical_license_number"`
		DepartmentID         *int64 `json:"department_id"`
		AvailableDays        string `json:"available_days"`
		WorkingHoursStart    string `json:"working_hours_start"`
		WorkingHoursEnd      string `json:"working_hours_end"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	role, err := h.UserService.GetRoleByName(ctx, body.Role)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if role == nil {
		c.JSON(400, gin.H{"error": "Unknown role"})
		return
	}

	user := models.User{
		Username:             body.Username,
		Email:                body.Email,
		Password:             body.Password,
		RoleID:               role.ID,
		StudentID:            body.StudentID,
		StaffNo:              body.StaffNo,
		MedicalLicenseNumber: body.MedicalLicenseNumber,
		DepartmentID:         body.DepartmentID,
		AvailableDays:        body.AvailableDays,
		WorkingHoursStart:    body.WorkingHoursStart,
		WorkingHoursEnd:      body.WorkingHoursEnd,
	}
	if err := h.UserService.ValidateAndCreateUser(ctx, &user); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
		return
	}
	c.Status(201)
}

// UpdateUserStatus activates, deactivates or archives an account.
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.UserService.UpdateUserStatus(c.Request.Context(), id, body.Status); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

func (h *AdminHandler) GetUserPermissions(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	permissions, err := h.UserService.GetUserPermissions(c.Request.Context(), id)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, permissions)
}

func (h *AdminHandler) GrantPermission(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	var body struct {
		PermissionID int64 `json:"permission_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PermissionID == 0 {
		c.JSON(400, gin.H{"error": "permission_id is required"})
		return
	}

	if err := h.UserService.GrantUserPermission(c.Request.Context(), id, body.PermissionID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

func (h *AdminHandler) RevokePermission(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	permissionID, err := strconv.ParseInt(c.Param("permission_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid permission ID"})
		return
	}

	if err := h.UserService.RevokeUserPermission(c.Request.Context(), id, permissionID); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(200)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	if err := h.UserService.DeleteUser(c.Request.Context(), id); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to delete user account: %v", err)})
		return
	}
	c.Status(200)
}

func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return 0, false
	}
	return id, true
}
