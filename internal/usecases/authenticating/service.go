package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-agent/internal/config"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
	"github.com/vfg2006/meta-ads-agent/pkg/apiErrors"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	Enabled() bool
	GenerateToken(subject, role string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(cfg config.Auth) Authenticator {
	return &Service{
		secret: []byte(cfg.Secret),
		now:    time.Now,
	}
}

// Enabled é falso quando AUTH_SECRET não foi definido; nesse caso a API fica aberta
func (s *Service) Enabled() bool {
	return len(s.secret) > 0
}

func (s *Service) GenerateToken(subject, role string, ttl time.Duration) (string, error) {
	if !s.Enabled() {
		return "", NewAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "")
	}
	if subject == "" {
		return "", NewAuthError(ErrMissingSubject, apiErrors.ErrMissingRequiredData, "")
	}
	if role != domain.RoleAdmin && role != domain.RoleViewer {
		return "", NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, role)
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	claims := domain.Claims{
		Subject: subject,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", NewAuthError(ErrTokenGenerationErr, apiErrors.ErrInternalServer, err.Error())
	}

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		logrus.WithError(err).Debug("auth: token rejected")
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}
