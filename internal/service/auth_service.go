package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/atelier-nord/portfolio-backend/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// ============================================
// Auth Service
// ============================================

// TokenSubject is the only principal this API knows about.
const TokenSubject = "admin"

type AuthService interface {
	Login(password string) (string, error)
	ValidateToken(token string) (*jwt.Token, error)
	SubjectFromToken(token *jwt.Token) (string, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(password string) (string, error) {
	// Constant-time compare; the admin secret is static so a timing oracle
	// would leak it byte by byte.
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	token, err := s.generateToken(time.Hour * time.Duration(s.cfg.JWTExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (s *authService) SubjectFromToken(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	subject, ok := claims["sub"].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	return subject, nil
}

func (s *authService) generateToken(ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": TokenSubject,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
