package utils

import (
	"testing"

	"UniClinic/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSymmetricKey(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
}

func TestTokenRoundTrip(t *testing.T) {
	setSymmetricKey(t)

	token, err := GenerateAccessToken("42", models.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestValidateTokenRoles(t *testing.T) {
	setSymmetricKey(t)

	token, err := GenerateAccessToken("7", models.RoleDoctor)
	require.NoError(t, err)

	t.Run("matching role passes", func(t *testing.T) {
		claims, err := ValidateToken(token, models.RoleDoctor, models.RoleClinicalStaff)
		require.NoError(t, err)
		assert.Equal(t, models.RoleDoctor, claims.Role)
	})

	t.Run("role mismatch is refused", func(t *testing.T) {
		_, err := ValidateToken(token, models.RoleStudent)
		assert.Error(t, err)
	})

	t.Run("garbage token is refused", func(t *testing.T) {
		_, err := ValidateToken("v2.local.garbage")
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hashed)

	assert.True(t, CheckPassword(hashed, "Str0ng!pass"))
	assert.False(t, CheckPassword(hashed, "wrong-password"))
}
