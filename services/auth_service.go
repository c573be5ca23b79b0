package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-day/middleware"
	"github.com/Dosada05/tournament-day/utils"
	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleAdmin = "admin"

	DefaultTokenTTL = 8 * time.Hour
)

type AuthService interface {
	// Login checks the shared admin password and returns a signed token with its expiry.
	Login(ctx context.Context, password string) (string, time.Time, error)
}

type authService struct {
	passwordHash string
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// NewAuthService builds the admin login. An empty passwordHash disables login.
func NewAuthService(passwordHash, jwtSecret string, ttl time.Duration) AuthService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &authService{
		passwordHash: passwordHash,
		secret:       []byte(jwtSecret),
		ttl:          ttl,
		now:          time.Now,
	}
}

func (s *authService) Login(_ context.Context, password string) (string, time.Time, error) {
	if len(s.passwordHash) == 0 {
		return "", time.Time{}, ErrAuthDisabled
	}

	ok, err := utils.CheckPasswordHash(password, s.passwordHash)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to compare password hash: %w", err)
	}
	if !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.MapClaims{
		middleware.ClaimSubject: RoleAdmin,
		middleware.ClaimRole:    RoleAdmin,
		"iat":                   now.Unix(),
		"exp":                   expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
