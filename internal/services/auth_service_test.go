package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pmtrack/backend/internal/config"
	"github.com/pmtrack/backend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
		JWTIssuer:       "pmtrack",
	}
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, testConfig())
	user := &models.User{
		ID:       uuid.New(),
		Email:    "pm@example.com",
		FullName: "Pat Manager",
		Roles:    []models.Role{{Name: models.RoleProjectManager}, {Name: models.RoleUser}},
	}

	signed, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, user.ID.String(), claims["sub"])
	require.Equal(t, "pm@example.com", claims["email"])
	require.Equal(t, "Pat Manager", claims["name"])
	require.Equal(t, "pmtrack", claims["iss"])

	roles, ok := claims["roles"].([]interface{})
	require.True(t, ok)
	require.ElementsMatch(t, []interface{}{"ProjectManager", "User"}, roles)

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	require.True(t, exp.After(time.Now()))
}

func TestGenerateAccessToken_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, testConfig())
	signed, err := svc.GenerateAccessToken(&models.User{ID: uuid.New()})
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	require.Error(t, err)
}

func TestHashToken_Deterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, hashToken("abc"), hashToken("abc"))
	require.NotEqual(t, hashToken("abc"), hashToken("abd"))
	require.Len(t, hashToken("abc"), 64)
}
