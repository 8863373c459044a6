package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	t.Run("admin roles short-circuit to true", func(t *testing.T) {
		admin := User{Role: Role{Name: RoleAdmin}}
		superadmin := User{Role: Role{Name: RoleSuperAdmin}}

		assert.True(t, admin.HasPermission(PermManageSettings))
		assert.True(t, admin.HasPermission("anything_at_all"))
		assert.True(t, superadmin.HasPermission(PermManageUsers))
	})

	t.Run("role default permissions apply", func(t *testing.T) {
		student := User{Role: Role{
			Name: RoleStudent,
			Permissions: []Permission{
				{Name: PermBookAppointments},
				{Name: PermViewSelf},
			},
		}}

		assert.True(t, student.HasPermission(PermBookAppointments))
		assert.False(t, student.HasPermission(PermManageRecords))
	})

	t.Run("per-user overrides extend the role defaults", func(t *testing.T) {
		nurse := User{
			Role: Role{
				Name:        RoleClinicalStaff,
				Permissions: []Permission{{Name: PermConfirmAppointments}},
			},
			ExtraPermissions: []Permission{{Name: PermManageSettings}},
		}

		assert.True(t, nurse.HasPermission(PermConfirmAppointments))
		assert.True(t, nurse.HasPermission(PermManageSettings))
		assert.False(t, nurse.HasPermission(PermManageUsers))
	})
}

func TestIsStaff(t *testing.T) {
	assert.True(t, (&User{Role: Role{Name: RoleDoctor}}).IsStaff())
	assert.True(t, (&User{Role: Role{Name: RoleClinicalStaff}}).IsStaff())
	assert.True(t, (&User{Role: Role{Name: RoleAdmin}}).IsStaff())
	assert.False(t, (&User{Role: Role{Name: RoleStudent}}).IsStaff())
	assert.False(t, (&User{Role: Role{Name: RoleAcademicStaff}}).IsStaff())
}

func TestUserWorksOn(t *testing.T) {
	doctor := User{AvailableDays: "Monday,Wednesday,Friday"}

	assert.True(t, doctor.WorksOn(time.Monday))
	assert.True(t, doctor.WorksOn(time.Friday))
	assert.False(t, doctor.WorksOn(time.Tuesday))
	assert.False(t, doctor.WorksOn(time.Sunday))
}
