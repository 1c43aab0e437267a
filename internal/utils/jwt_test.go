// internal/utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "customer@example.com", false, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "customer@example.com", claims.Email)
	assert.False(t, claims.IsStaff)
	assert.Equal(t, "clothify", claims.Issuer)
}

func TestJWTCarriesStaffFlag(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "admin@clothify.com", true, 1)
	assert.NoError(t, err)

	claims, err := ValidateJWT(token)
	assert.NoError(t, err)
	assert.True(t, claims.IsStaff)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "customer@example.com", false, -1)
	assert.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "customer@example.com", false, 1)
	assert.NoError(t, err)

	SetJWTSecret("a-completely-different-secret")
	defer SetJWTSecret("your-secret-key-change-in-production")

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateRefreshToken(userID, 1)
	assert.NoError(t, err)

	subject, err := ValidateRefreshToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), subject)
}

func TestRefreshTokenExpiry(t *testing.T) {
	token, err := GenerateRefreshToken(uuid.New(), 1)
	assert.NoError(t, err)

	claims, err := ValidateJWT(token)
	if err == nil {
		// Refresh tokens parse as generic claims; expiry must be in the future
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	}

	_, err = ValidateRefreshToken(token)
	assert.NoError(t, err)
}
