package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mgdelacruz/regisys/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		SessionExp:  exp,
		TokenIssuer: "regisys-test",
	})
}

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := &models.User{ID: 42, FullName: "Maria Santos", Role: models.RoleRegistrar}

	token, err := svc.GenerateSessionToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "Maria Santos", claims.FullName)
	require.Equal(t, string(models.RoleRegistrar), claims.Role)
	require.Equal(t, "regisys-test", claims.Issuer)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := testJWTService(-time.Minute)
	user := &models.User{ID: 1, FullName: "x", Role: models.RoleStudent}

	token, err := svc.GenerateSessionToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenFromOtherSecretRejected(t *testing.T) {
	issuer := testJWTService(time.Hour)
	user := &models.User{ID: 7, FullName: "x", Role: models.RoleAdmin}

	token, err := issuer.GenerateSessionToken(user)
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different", SessionExp: time.Hour, TokenIssuer: "regisys-test"})
	_, err = other.ValidateAndExtractClaims(token)
	require.Error(t, err)
}

func TestEmptyTokenRejected(t *testing.T) {
	svc := testJWTService(time.Hour)
	_, err := svc.ValidateAndExtractClaims("")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	require.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
