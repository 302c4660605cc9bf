package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
)

func TestRegisterAndLogin(t *testing.T) {
	service := NewAuthService(newMemUserStore(), "test-secret")

	user, err := service.Register(context.Background(), &models.RegisterRequest{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")

	_, err = service.Register(context.Background(), &models.RegisterRequest{
		Name:     "Alex Again",
		Email:    "alex@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrConflict)

	token, loggedIn, err := service.Login(context.Background(), &models.LoginRequest{
		Email:    "alex@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.Hex(), claims["user_id"])
	assert.Equal(t, "user", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := NewAuthService(newMemUserStore(), "test-secret")

	_, _, err := service.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Register(context.Background(), &models.RegisterRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	_, _, err = service.Login(context.Background(), &models.LoginRequest{
		Email:    "sam@example.com",
		Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	store := newMemUserStore()
	service := NewAuthService(store, "test-secret")

	require.NoError(t, service.EnsureAdmin(context.Background(), "admin@example.com", "sup3rsecret"))

	admin, err := store.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Second call leaves the existing account alone.
	require.NoError(t, service.EnsureAdmin(context.Background(), "admin@example.com", "different"))
	again, err := store.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	assert.Equal(t, admin.Password, again.Password)

	// Unconfigured bootstrap is a no-op.
	require.NoError(t, service.EnsureAdmin(context.Background(), "", ""))
}
