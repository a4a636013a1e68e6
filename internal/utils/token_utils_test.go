package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyigit/hotel_folio_app/internal/core/domain"
	"github.com/kyigit/hotel_folio_app/internal/utils"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseJWT(t *testing.T) {
	token, expiresAt, err := utils.GenerateJWT("user-123", domain.RoleReception, testSecret, time.Hour, "hotel-folio-app")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, domain.RoleReception, claims.Role)
	assert.Equal(t, "hotel-folio-app", claims.Issuer)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, _, err := utils.GenerateJWT("user-123", domain.RoleAdmin, testSecret, time.Hour, "hotel-folio-app")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "a-different-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateJWT("user-123", domain.RoleService, testSecret, -time.Minute, "hotel-folio-app")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestParseJWT_Garbage(t *testing.T) {
	_, err := utils.ParseAndValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestHashAndCheckPIN(t *testing.T) {
	hash, err := utils.HashPIN("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.True(t, utils.CheckPINHash("1234", hash))
	assert.False(t, utils.CheckPINHash("4321", hash))
	assert.False(t, utils.CheckPINHash("1234", "not-a-bcrypt-hash"))
}
