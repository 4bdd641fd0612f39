package services

import (
	"errors"
	"fmt"
	"time"

	"gallery_store/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenLifetime = 24 * time.Hour

// AuthService signs admins in and issues the bearer tokens the admin routes
// require.
type AuthService interface {
	Login(email, password string) (string, error)
}

type authService struct {
	adminRepo repository.AdminUserRepository
	jwtSecret string
}

func NewAuthService(adminRepo repository.AdminUserRepository, jwtSecret string) AuthService {
	return &authService{adminRepo: adminRepo, jwtSecret: jwtSecret}
}

func (s *authService) Login(email, password string) (string, error) {
	user, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up admin user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
