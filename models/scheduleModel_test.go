package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStaffScheduleWorksOn(t *testing.T) {
	schedule := StaffSchedule{WorkingDays: "Monday, Tuesday ,Thursday"}

	assert.True(t, schedule.WorksOn(time.Monday))
	assert.True(t, schedule.WorksOn(time.Tuesday), "whitespace around day names is tolerated")
	assert.True(t, schedule.WorksOn(time.Thursday))
	assert.False(t, schedule.WorksOn(time.Wednesday))
	assert.False(t, schedule.WorksOn(time.Saturday))
}

func TestHolidayCovers(t *testing.T) {
	holiday := AcademicHoliday{StartDate: "2026-12-20", EndDate: "2027-01-05"}

	assert.True(t, holiday.Covers("2026-12-20"), "range start is inclusive")
	assert.True(t, holiday.Covers("2027-01-05"), "range end is inclusive")
	assert.True(t, holiday.Covers("2026-12-31"))
	assert.False(t, holiday.Covers("2026-12-19"))
	assert.False(t, holiday.Covers("2027-01-06"))
}

func TestHolidayAppliesTo(t *testing.T) {
	deptGP := int64(1)
	deptLab := int64(4)

	t.Run("all staff types, all departments", func(t *testing.T) {
		holiday := AcademicHoliday{AffectsStaffType: StaffTypeAll}

		assert.True(t, holiday.AppliesTo(StaffTypeDoctor, &deptGP))
		assert.True(t, holiday.AppliesTo(StaffTypeClinicalStaff, nil))
	})

	t.Run("staff type filter", func(t *testing.T) {
		holiday := AcademicHoliday{AffectsStaffType: StaffTypeAcademicStaff}

		assert.True(t, holiday.AppliesTo(StaffTypeAcademicStaff, nil))
		assert.False(t, holiday.AppliesTo(StaffTypeDoctor, &deptGP))
	})

	t.Run("department filter", func(t *testing.T) {
		holiday := AcademicHoliday{AffectsStaffType: StaffTypeAll, AffectedDepartments: "1, 2"}

		assert.True(t, holiday.AppliesTo(StaffTypeDoctor, &deptGP))
		assert.False(t, holiday.AppliesTo(StaffTypeDoctor, &deptLab))
		assert.False(t, holiday.AppliesTo(StaffTypeDoctor, nil),
			"a department-scoped holiday does not block targets without a department")
	})

	t.Run("malformed department entries are skipped", func(t *testing.T) {
		holiday := AcademicHoliday{AffectsStaffType: StaffTypeAll, AffectedDepartments: "x,4"}

		assert.True(t, holiday.AppliesTo(StaffTypeDoctor, &deptLab))
		assert.False(t, holiday.AppliesTo(StaffTypeDoctor, &deptGP))
	})
}
