package utils_test

import (
	"testing"

	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{Email: "asha@example.com", Role: models.RoleUser}
	user.ID = 42

	tokenStr, err := utils.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := utils.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.False(t, claims.IsAdmin())
}

func TestParseTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := &models.User{Email: "asha@example.com", Role: models.RoleAdmin}
	tokenStr, err := utils.GenerateToken(user)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = utils.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := utils.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestGenerateTokenMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := utils.GenerateToken(&models.User{})
	assert.Error(t, err)
}
