package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-agent/internal/config"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewService(config.Auth{Secret: "s3cr3t"})

	token, err := svc.GenerateToken("crm-backend", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "crm-backend", claims.Subject)
	assert.True(t, claims.IsAdmin())
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewService(config.Auth{Secret: "one"})
	validator := NewService(config.Auth{Secret: "two"})

	token, err := issuer.GenerateToken("ops", domain.RoleViewer, time.Hour)
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, IsAuthorizationError(err))
}

func TestValidateToken_Expired(t *testing.T) {
	svc := &Service{secret: []byte("s3cr3t"), now: time.Now}

	past := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return past }
	token, err := svc.GenerateToken("ops", domain.RoleViewer, time.Minute)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	svc := NewService(config.Auth{Secret: "s3cr3t"})

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Subject: "x", Role: domain.RoleAdmin})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_Validation(t *testing.T) {
	disabled := NewService(config.Auth{})
	assert.False(t, disabled.Enabled())
	_, err := disabled.GenerateToken("x", domain.RoleAdmin, 0)
	assert.ErrorIs(t, err, ErrMissingSecret)

	svc := NewService(config.Auth{Secret: "s"})
	_, err = svc.GenerateToken("", domain.RoleAdmin, 0)
	assert.ErrorIs(t, err, ErrMissingSubject)

	_, err = svc.GenerateToken("x", "root", 0)
	assert.ErrorIs(t, err, ErrInvalidRole)
}
