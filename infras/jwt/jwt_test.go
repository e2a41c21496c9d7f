package jwt_test

import (
	"testing"

	"rentacar/config"
	"rentacar/infras/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(secret string, expireMin int) *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "rentacar"
	cfg.JWT.OutcomeSecret = secret
	cfg.JWT.OutcomeExpireMin = expireMin

	return cfg
}

func TestOutcomeToken_RoundTrip(t *testing.T) {
	service := jwt.New(newConfig("outcome-secret", 5))

	token, err := service.GenerateOutcomeToken("confirmed", "Booking confirmed! Your car is reserved in Lahore.")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateOutcomeToken(token)
	require.NoError(t, err)

	assert.Equal(t, "confirmed", claims.Kind)
	assert.Equal(t, "Booking confirmed! Your car is reserved in Lahore.", claims.Message)
	assert.Equal(t, "rentacar", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestOutcomeToken_DefaultExpiry(t *testing.T) {
	service := jwt.New(newConfig("outcome-secret", 0))

	token, err := service.GenerateOutcomeToken("validation", "Error: Invalid brand selected.")
	require.NoError(t, err)

	claims, err := service.ValidateOutcomeToken(token)
	require.NoError(t, err)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestOutcomeToken_WrongSecret(t *testing.T) {
	token, err := jwt.New(newConfig("first-secret", 5)).GenerateOutcomeToken("confirmed", "ok")
	require.NoError(t, err)

	_, err = jwt.New(newConfig("second-secret", 5)).ValidateOutcomeToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestOutcomeToken_Tampered(t *testing.T) {
	service := jwt.New(newConfig("outcome-secret", 5))

	_, err := service.ValidateOutcomeToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = service.ValidateOutcomeToken("")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestOutcomeToken_ForeignSubject(t *testing.T) {
	claims := jwt.OutcomeClaims{
		Kind:             "confirmed",
		Message:          "ok",
		RegisteredClaims: gojwt.RegisteredClaims{Subject: "access"},
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("outcome-secret"))
	require.NoError(t, err)

	_, err = jwt.New(newConfig("outcome-secret", 5)).ValidateOutcomeToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestOutcomeToken_RandomSecret(t *testing.T) {
	cfg := newConfig("", 5)
	service := jwt.New(cfg)

	assert.NotEmpty(t, cfg.JWT.OutcomeSecret)

	token, err := service.GenerateOutcomeToken("storage", "Error: Database error during booking.")
	require.NoError(t, err)

	claims, err := service.ValidateOutcomeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "storage", claims.Kind)
}
