package models

import (
	"time"

	"gorm.io/gorm"
)

// Role names form a closed set; there is no endpoint that changes a user's
// role after creation.
const (
	RoleStudent       = "student"
	RoleDoctor        = "doctor"
	RoleClinicalStaff = "clinical_staff"
	RoleAcademicStaff = "academic_staff"
	RoleAdmin         = "admin"
	RoleSuperAdmin    = "superadmin"
)

// User account statuses.
const (
	UserStatusActive              = "active"
	UserStatusInactive            = "inactive"
	UserStatusPendingVerification = "pending_verification"
	UserStatusArchived            = "archived"
)

// Role represents a user role
type Role struct {
	ID          int64        `gorm:"primaryKey;column:id" json:"id"`
	Name        string       `gorm:"size:50;not null;unique;index;column:name" json:"name"`
	Description string       `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	Permissions []Permission `gorm:"many2many:role_permissions;" json:"permissions"`
}

func (Role) TableName() string {
	return "roles"
}

// SeedRoles inserts initial roles into the database
func SeedRoles(db *gorm.DB) error {
	initialRoles := []Role{
		{Name: RoleStudent, Description: "Can book and manage own appointments"},
		{Name: RoleDoctor, Description: "Can confirm appointments and manage clinical records"},
		{Name: RoleClinicalStaff, Description: "Can triage, schedule and manage patients"},
		{Name: RoleAcademicStaff, Description: "Can book and manage own appointments"},
		{Name: RoleAdmin, Description: "Full access to the system"},
		{Name: RoleSuperAdmin, Description: "Full access including system settings"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, role := range initialRoles {
			if err := tx.FirstOrCreate(&role, Role{Name: role.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// User represents a user in the system
type User struct {
	ID       int64  `gorm:"primaryKey;column:id" json:"id"`
	Username string `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email    string `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password string `gorm:"size:255;not null;column:password" json:"password"`
	RoleID   int64  `gorm:"index;not null;column:role_id" json:"role_id"`
	Role     Role   `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role"`
	Status   string `gorm:"size:30;not null;default:active;check:status IN ('active', 'inactive', 'pending_verification', 'archived');column:status" json:"status"`

	// Role-specific identifiers. Only the one matching the role is filled.
	StudentID            string `gorm:"size:30;column:student_id;index" json:"student_id"`
	StaffNo              string `gorm:"size:30;column:staff_no;index" json:"staff_no"`
	MedicalLicenseNumber string `gorm:"size:50;column:medical_license_number" json:"medical_license_number"`

	DepartmentID *int64      `gorm:"column:department_id;index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID;references:ID" json:"department,omitempty"`

	// Doctor availability defaults, overridden by a StaffSchedule row when present.
	AvailableDays     string `gorm:"size:100;column:available_days" json:"available_days"`
	WorkingHoursStart string `gorm:"size:5;column:working_hours_start" json:"working_hours_start"`
	WorkingHoursEnd   string `gorm:"size:5;column:working_hours_end" json:"working_hours_end"`

	ExtraPermissions []Permission `gorm:"many2many:user_permissions;" json:"extra_permissions"`
	CreatedAt        time.Time    `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// IsStaff reports whether the user acts on behalf of the clinic rather than
// as a patient.
func (u *User) IsStaff() bool {
	switch u.Role.Name {
	case RoleDoctor, RoleClinicalStaff, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// WorksOn reports whether the weekday belongs to the doctor's default
// availability. A StaffSchedule row takes precedence when one exists.
func (u *User) WorksOn(day time.Weekday) bool {
	return weekdayInList(u.AvailableDays, day)
}

// HasPermission checks the union of role permissions and per-user grants.
// Admin roles short-circuit to true.
func (u *User) HasPermission(name string) bool {
	if u.Role.Name == RoleAdmin || u.Role.Name == RoleSuperAdmin {
		return true
	}
	for _, p := range u.Role.Permissions {
		if p.Name == name {
			return true
		}
	}
	for _, p := range u.ExtraPermissions {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Permission represents a permission in the system
type Permission struct {
	ID          int64  `gorm:"primaryKey;column:id" json:"id"`
	Name        string `gorm:"size:100;not null;unique;index;column:name" json:"name"`
	Description string `gorm:"type:text;column:description" json:"description"`
}

func (Permission) TableName() string {
	return "permissions"
}

// Permission names used by the route layer.
const (
	PermBookAppointments    = "book_appointments"
	PermManageAppointments  = "manage_appointments"
	PermConfirmAppointments = "confirm_appointments"
	PermViewPatients        = "view_patients"
	PermManageRecords       = "manage_medical_records"
	PermManageSchedules     = "manage_schedules"
	PermManageSettings      = "manage_settings"
	PermManageUsers         = "manage_users"
	PermViewSelf            = "view_self"
)

// SeedPermissions inserts initial permissions into the database
func SeedPermissions(db *gorm.DB) error {
	initialPermissions := []Permission{
		{Name: PermBookAppointments, Description: "Book, reschedule or cancel own appointments"},
		{Name: PermManageAppointments, Description: "Create or update any appointment"},
		{Name: PermConfirmAppointments, Description: "Confirm, reject or close appointments"},
		{Name: PermViewPatients, Description: "View patient data"},
		{Name: PermManageRecords, Description: "Create or update medical records and prescriptions"},
		{Name: PermManageSchedules, Description: "Manage staff schedules and academic holidays"},
		{Name: PermManageSettings, Description: "Update system and clinic settings"},
		{Name: PermManageUsers, Description: "Create, update, or delete users"},
		{Name: PermViewSelf, Description: "View personal data"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, permission := range initialPermissions {
			if err := tx.FirstOrCreate(&permission, Permission{Name: permission.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// RolePermission represents the association between roles and permissions
type RolePermission struct {
	ID           int64 `gorm:"primaryKey;column:id" json:"id"`
	RoleID       int64 `gorm:"index;column:role_id" json:"role_id"`
	PermissionID int64 `gorm:"index;column:permission_id" json:"permission_id"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// UserPermission represents a per-user permission override on top of the
// role defaults.
type UserPermission struct {
	ID           int64 `gorm:"primaryKey;column:id" json:"id"`
	UserID       int64 `gorm:"index;column:user_id" json:"user_id"`
	PermissionID int64 `gorm:"index;column:permission_id" json:"permission_id"`
}

func (UserPermission) TableName() string {
	return "user_permissions"
}

// SeedRolePermissions inserts the capability set for each role. Admin roles
// are not seeded; HasPermission short-circuits for them.
func SeedRolePermissions(db *gorm.DB) error {
	grants := map[string][]string{
		RoleStudent:       {PermBookAppointments, PermViewSelf},
		RoleAcademicStaff: {PermBookAppointments, PermViewSelf},
		RoleDoctor: {
			PermConfirmAppointments, PermManageAppointments,
			PermViewPatients, PermManageRecords, PermViewSelf,
		},
		RoleClinicalStaff: {
			PermConfirmAppointments, PermManageAppointments,
			PermViewPatients, PermManageRecords, PermManageSchedules, PermViewSelf,
		},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for roleName, permNames := range grants {
			var role Role
			if err := tx.Where("name = ?", roleName).First(&role).Error; err != nil {
				return err
			}
			for _, permName := range permNames {
				var perm Permission
				if err := tx.Where("name = ?", permName).First(&perm).Error; err != nil {
					return err
				}
				rp := RolePermission{RoleID: role.ID, PermissionID: perm.ID}
				if err := tx.FirstOrCreate(&rp, RolePermission{RoleID: role.ID, PermissionID: perm.ID}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
