package service

import (
	"context"
	"testing"
	"time"

	"animehub/internal/config"
	"animehub/internal/dto"
	"animehub/internal/middleware/auth"
	"animehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newAuthServiceWithMocks() (AuthService, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		AccessTokenTTL: 15 * time.Minute,
	}
	return NewAuthService(userRepo, cfg), userRepo
}

func TestRegister_Success(t *testing.T) {
	svc, userRepo := newAuthServiceWithMocks()

	userRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(context.Background(), &dto.RegisterDTO{
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "test@example.com", *user.Email)
	// The stored password must be a hash, never the plaintext.
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, auth.VerifyPassword(user.Password, "password123"))
	userRepo.AssertExpectations(t)
}

func TestRegister_EmailExists(t *testing.T) {
	svc, userRepo := newAuthServiceWithMocks()

	existing := &models.User{ID: "u1"}
	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	user, err := svc.Register(context.Background(), &dto.RegisterDTO{
		Email:    "taken@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailInUse)
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo := newAuthServiceWithMocks()

	hashed, err := auth.HashPassword("password123")
	assert.NoError(t, err)

	email := "test@example.com"
	userRepo.On("FindByEmail", mock.Anything, email).Return(&models.User{
		ID:       "u1",
		Email:    &email,
		Password: hashed,
		IsAdmin:  true,
	}, nil)

	token, user, err := svc.Login(context.Background(), &dto.LoginDTO{
		Email:    email,
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", user.ID)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := newAuthServiceWithMocks()

	hashed, _ := auth.HashPassword("password123")
	email := "test@example.com"
	userRepo.On("FindByEmail", mock.Anything, email).Return(&models.User{
		ID:       "u1",
		Email:    &email,
		Password: hashed,
	}, nil)

	token, user, err := svc.Login(context.Background(), &dto.LoginDTO{
		Email:    email,
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, userRepo := newAuthServiceWithMocks()

	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.Login(context.Background(), &dto.LoginDTO{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_GarbageRejected(t *testing.T) {
	svc, _ := newAuthServiceWithMocks()

	_, err := svc.ValidateToken("not.a.token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecretRejected(t *testing.T) {
	svc, userRepo := newAuthServiceWithMocks()

	hashed, _ := auth.HashPassword("password123")
	email := "test@example.com"
	userRepo.On("FindByEmail", mock.Anything, email).Return(&models.User{
		ID: "u1", Email: &email, Password: hashed,
	}, nil)

	token, _, err := svc.Login(context.Background(), &dto.LoginDTO{Email: email, Password: "password123"})
	assert.NoError(t, err)

	other := NewAuthService(userRepo, &config.Config{
		JWTSecret:      "different-secret",
		AccessTokenTTL: 15 * time.Minute,
	})

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
