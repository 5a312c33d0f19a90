package service

import (
	"context"
	"errors"
	"time"

	"animehub/internal/config"
	"animehub/internal/dto"
	"animehub/internal/middleware/auth"
	"animehub/internal/models"
	"animehub/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Claims is what the middleware gets back from a validated token.
type Claims struct {
	UserID  string
	IsAdmin bool
}

type AuthService interface {
	Register(ctx context.Context, d *dto.RegisterDTO) (*models.User, error)
	Login(ctx context.Context, d *dto.LoginDTO) (string, *models.User, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	TokenTTL() time.Duration
}

type authService struct {
	userRepo       repository.UserRepository
	jwtSecret      string
	accessTokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:       userRepo,
		jwtSecret:      cfg.JWTSecret,
		accessTokenTTL: cfg.AccessTokenTTL,
	}
}

func (s *authService) Register(ctx context.Context, d *dto.RegisterDTO) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, d.Email); err == nil {
		return nil, ErrEmailInUse
	}

	hashed, err := auth.HashPassword(d.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     &d.Email,
		Password:  hashed,
		FirstName: d.FirstName,
		LastName:  d.LastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, d *dto.LoginDTO) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, d.Email)
	if err != nil {
		// Dummy compare to mitigate timing attacks (always take same time).
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", d.Password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, d.Password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(s.accessTokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	isAdmin, _ := mapClaims["is_admin"].(bool)

	return &Claims{UserID: userID, IsAdmin: isAdmin}, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *authService) TokenTTL() time.Duration {
	return s.accessTokenTTL
}
