package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeProfile() Profile {
	return Profile{
		UserID:                1,
		FullName:              "Amina Yusuf",
		Phone:                 "0712345678",
		DateOfBirth:           "2003-04-12",
		EmergencyContactName:  "Halima Yusuf",
		EmergencyContactPhone: "0798765432",
	}
}

func TestProfileIsComplete(t *testing.T) {
	t.Run("all required fields present", func(t *testing.T) {
		profile := completeProfile()

		assert.True(t, profile.IsComplete())
		assert.Empty(t, profile.MissingFields())
	})

	t.Run("each missing required field fails the gate", func(t *testing.T) {
		cases := map[string]func(*Profile){
			"full_name":               func(p *Profile) { p.FullName = "" },
			"phone":                   func(p *Profile) { p.Phone = "" },
			"date_of_birth":           func(p *Profile) { p.DateOfBirth = "" },
			"emergency_contact_name":  func(p *Profile) { p.EmergencyContactName = "" },
			"emergency_contact_phone": func(p *Profile) { p.EmergencyContactPhone = "" },
		}

		for field, blank := range cases {
			profile := completeProfile()
			blank(&profile)

			assert.False(t, profile.IsComplete(), "missing %s must fail", field)
			assert.Contains(t, profile.MissingFields(), field)
		}
	})

	t.Run("optional fields do not gate booking", func(t *testing.T) {
		profile := completeProfile()
		profile.BloodType = ""
		profile.Allergies = ""
		profile.Address = ""

		assert.True(t, profile.IsComplete())
	})

	t.Run("empty profile lists every required field", func(t *testing.T) {
		profile := Profile{}
		assert.Len(t, profile.MissingFields(), 5)
	})
}
