package service

import (
	"testing"
	"time"

	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/internal/app/repository"
	"github.com/foodiespot/foodiespot-backend/internal/db"
	"github.com/foodiespot/foodiespot-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	return NewAuthService(
		userRepo,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)
}

func TestAuthService_Register(t *testing.T) {
	authService := setupAuthServiceTest(t)

	tests := []struct {
		name     string
		email    string
		password string
		fullName string
		role     string
		wantErr  error
	}{
		{
			name:     "Valid customer registration",
			email:    "alice@example.com",
			password: "password123",
			fullName: "Alice Kim",
			role:     "customer",
			wantErr:  nil,
		},
		{
			name:     "Valid shop owner registration",
			email:    "owner@example.com",
			password: "password123",
			fullName: "Bob Owner",
			role:     "shop_owner",
			wantErr:  nil,
		},
		{
			name:     "Duplicate email",
			email:    "alice@example.com",
			password: "password456",
			fullName: "Another Alice",
			role:     "customer",
			wantErr:  ErrEmailAlreadyExists,
		},
		{
			name:     "Unknown role",
			email:    "carol@example.com",
			password: "password123",
			fullName: "Carol",
			role:     "admin",
			wantErr:  ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Register(tt.email, tt.password, tt.fullName, tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.fullName, user.FullName)
				assert.Equal(t, model.UserRole(tt.role), user.Role)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
			}
		})
	}
}

func TestAuthService_Register_DoesNotStorePlaintextPassword(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, _, err := authService.Register("dave@example.com", "supersecret", "Dave", "customer")
	require.NoError(t, err)

	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.True(t, util.VerifyPassword(user.PasswordHash, "supersecret"))
}

func TestAuthService_Login(t *testing.T) {
	authService := setupAuthServiceTest(t)

	email := "alice@example.com"
	password := "password123"
	_, _, err := authService.Register(email, password, "Alice Kim", "customer")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid login",
			email:    email,
			password: password,
			wantErr:  nil,
		},
		{
			name:     "Wrong password",
			email:    email,
			password: "wrongpassword",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Non-existing user",
			email:    "notfound@example.com",
			password: password,
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthService_Login_TokenCarriesRole(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, _, err := authService.Register("owner@example.com", "password123", "Bob Owner", "shop_owner")
	require.NoError(t, err)

	user, tokens, err := authService.Login("owner@example.com", "password123")
	require.NoError(t, err)

	claims, err := util.ValidateToken(tokens.AccessToken, "test-jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "shop_owner", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestAuthService_GetUserByID(t *testing.T) {
	authService := setupAuthServiceTest(t)

	registered, _, err := authService.Register("alice@example.com", "password123", "Alice Kim", "customer")
	require.NoError(t, err)

	user, err := authService.GetUserByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.Email, user.Email)

	_, err = authService.GetUserByID(99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_GetUserByID_DatabaseErrorIsNotNotFound(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	authService := NewAuthService(userRepo, "test-jwt-secret", 15*time.Minute, 7*24*time.Hour)

	// Sever the connection: the failure must surface as an error, not as
	// a missing user
	db.CleanupTestDB(testDB)

	_, err = authService.GetUserByID(1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
