package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaan/uniforum/internal/app/models"
	"github.com/kaan/uniforum/internal/pkg/apperrors"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hashed)

	assert.True(t, CheckPassword(hashed, "secret123"))
	assert.False(t, CheckPassword(hashed, "wrong"))
}

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "uniforum.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	deptID := int64(2)
	user := &models.User{
		ID:           5,
		Username:     "s.kaya",
		Role:         models.RoleStudent,
		DepartmentID: &deptID,
	}

	accessToken, refreshToken, expiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	require.NoError(t, err)

	actor := claims.Actor()
	assert.Equal(t, int64(5), actor.ID)
	assert.Equal(t, "s.kaya", actor.Username)
	assert.Equal(t, models.RoleStudent, actor.Role)
	require.NotNil(t, actor.DepartmentID)
	assert.Equal(t, deptID, *actor.DepartmentID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	user := &models.User{ID: 5, Username: "s.kaya", Role: models.RoleStudent}
	accessToken, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(accessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: 5, Username: "s.kaya", Role: models.RoleStudent}
	accessToken, _, _, err := testJWTService(time.Hour).GenerateTokenPair(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "uniforum.test",
	})
	_, err = other.ValidateAndExtractClaims(accessToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = ExtractBearerToken("Bearer ")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
