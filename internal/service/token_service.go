package service

import (
	"blogcms/internal/config"
	"blogcms/internal/models"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrNoSigningSecret means the process has no signing secret configured.
	// This is a configuration failure and should abort startup, not be
	// handled per request.
	ErrNoSigningSecret = errors.New("signing secret is not configured")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenMalformed  = errors.New("token malformed or invalid")
)

type TokenService interface {
	Issue(userID int64, username string, isAdmin bool) (string, error)
	Verify(tokenString string) (*models.Claims, error)
}

// tokenService issues and verifies stateless HS256 bearer tokens. There is
// no revocation list: a compromised token stays valid until its expiry.
type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret: []byte(cfg.JWTSecretKey),
		ttl:    cfg.AccessTokenDuration,
	}
}

func (s *tokenService) Issue(userID int64, username string, isAdmin bool) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSigningSecret
	}

	now := time.Now()
	claims := models.Claims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *tokenService) Verify(tokenString string) (*models.Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrNoSigningSecret
	}

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
