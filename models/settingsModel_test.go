package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsCoverEverySection(t *testing.T) {
	defaults := DefaultSettings()

	for _, section := range []string{
		SettingsGeneral, SettingsAuth, SettingsEmail,
		SettingsUploads, SettingsSecurity, SettingsBackup,
	} {
		assert.Contains(t, defaults, section)
	}
	assert.Len(t, defaults, 6)
}

func TestDecodeSection(t *testing.T) {
	t.Run("round-trips a typed payload", func(t *testing.T) {
		payload, err := json.Marshal(AuthSettings{
			MinPasswordLength: 10,
			AccessTokenHours:  12,
		})
		require.NoError(t, err)

		setting := SystemSetting{Section: SettingsAuth, Value: string(payload)}
		decoded, err := setting.DecodeSection()
		require.NoError(t, err)

		auth, ok := decoded.(*AuthSettings)
		require.True(t, ok)
		assert.Equal(t, 10, auth.MinPasswordLength)
		assert.Equal(t, 12, auth.AccessTokenHours)
	})

	t.Run("malformed JSON fails at decode time", func(t *testing.T) {
		setting := SystemSetting{Section: SettingsGeneral, Value: "{not json"}

		_, err := setting.DecodeSection()
		assert.Error(t, err)
	})

	t.Run("unknown section is refused", func(t *testing.T) {
		setting := SystemSetting{Section: "telemetry", Value: "{}"}

		_, err := setting.DecodeSection()
		assert.Error(t, err)
	})
}

func TestValidSection(t *testing.T) {
	assert.True(t, ValidSection(SettingsBackup))
	assert.False(t, ValidSection("telemetry"))
	assert.False(t, ValidSection(""))
}

func TestDefaultClinicSettings(t *testing.T) {
	settings := DefaultClinicSettings()

	assert.Equal(t, "2030-12-31", settings.MaxLookaheadDate)
	assert.True(t, settings.WorksOn(time.Monday))
	assert.True(t, settings.WorksOn(time.Friday))
	assert.False(t, settings.WorksOn(time.Saturday))
	assert.False(t, settings.WorksOn(time.Sunday))
}
