package service

import (
	"context"
	"testing"

	"konusturk-be/internal/dto"
	"konusturk-be/internal/entity"
	"konusturk-be/internal/repository/implementation"
	"konusturk-be/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newAuthService() IAuthService {
	store := kvstore.NewMemoryStore()
	return NewAuthService(implementation.NewUserRepository(store), nopLogger{})
}

func register(t *testing.T, svc IAuthService, email, password string) *entity.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &dto.RegisterRequest{Email: email, Password: password})
	require.NoError(t, err)
	return user
}

func TestRegisterAssignsIdentity(t *testing.T) {
	svc := newAuthService()

	user := register(t, svc, "ayse@example.com", "parola123")

	assert.NotEmpty(t, user.Id)
	assert.Equal(t, "ayse@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	register(t, svc, "ayse@example.com", "parola123")

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "ayse@example.com", Password: "başka"})
	assert.ErrorIs(t, err, entity.ErrDuplicateEmail)
}

func TestRegisterEmailIsCaseSensitive(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	register(t, svc, "ayse@example.com", "parola123")

	// A different casing is a different address in the directory.
	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "Ayse@example.com", Password: "parola123"})
	assert.NoError(t, err)
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	register(t, svc, "ayse@example.com", "parola123")

	current, err := svc.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	registered := register(t, svc, "ayse@example.com", "parola123")

	user, err := svc.Login(ctx, &dto.LoginRequest{Email: "ayse@example.com", Password: "parola123"})
	require.NoError(t, err)
	assert.Equal(t, registered.Id, user.Id)

	current, err := svc.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, registered.Id, current.Id)
	assert.Equal(t, registered.Email, current.Email)
}

func TestLoginWrongCredentials(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	register(t, svc, "ayse@example.com", "parola123")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ayse@example.com", "yanlış"},
		{"unknown email", "mehmet@example.com", "parola123"},
		{"wrong email casing", "Ayse@example.com", "parola123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password})
			assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

			current, err := svc.GetCurrentUser(ctx)
			require.NoError(t, err)
			assert.Nil(t, current)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	register(t, svc, "ayse@example.com", "parola123")
	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ayse@example.com", Password: "parola123"})
	require.NoError(t, err)

	firstName, level := "Ayşe", "beginner"
	updated, err := svc.UpdateProfile(ctx, &dto.UpdateProfileRequest{
		FirstName:    &firstName,
		TurkishLevel: &level,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayşe", updated.FirstName)
	assert.Equal(t, "beginner", updated.TurkishLevel)
	assert.Equal(t, "", updated.LastName)

	// Both the directory entry and the pointer see the change.
	current, err := svc.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Ayşe", current.FirstName)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	svc := newAuthService()

	firstName := "Ayşe"
	_, err := svc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{FirstName: &firstName})
	assert.ErrorIs(t, err, entity.ErrNoActiveSession)
}

func TestLogout(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	register(t, svc, "ayse@example.com", "parola123")
	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "ayse@example.com", Password: "parola123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	current, err := svc.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)

	// Idempotent.
	assert.NoError(t, svc.Logout(ctx))
}
