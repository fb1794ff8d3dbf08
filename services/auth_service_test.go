package services

import (
	"testing"
	"time"

	"github.com/danish-manzoor/ecommerce-store-sub001/repository"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authFixture(t *testing.T) *AuthService {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := authFixture(t)

	user, err := svc.Register("Ada@Example.com ", "hunter22", "Ada", "Example", "")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "customer", user.Role)
	assert.NotEqual(t, "hunter22", user.Password, "password stored hashed")

	token, logged, err := svc.Login("ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	claims := &utils.Claims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := authFixture(t)
	_, err := svc.Register("ada@example.com", "hunter22", "Ada", "Example", "")
	require.NoError(t, err)

	_, err = svc.Register("ADA@example.com", "other", "Someone", "Else", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := authFixture(t)
	_, err := svc.Register("ada@example.com", "hunter22", "Ada", "Example", "")
	require.NoError(t, err)

	_, _, err = svc.Login("ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
