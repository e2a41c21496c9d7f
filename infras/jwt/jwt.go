package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"time"

	"rentacar/config"
	"rentacar/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

const (
	outcomeSubject          = "outcome"
	defaultOutcomeExpireMin = 10
)

// OutcomeClaims carries a booking outcome across the post/redirect/get round trip.
type OutcomeClaims struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	jwt.RegisteredClaims
}

// JWT signs and verifies outcome tokens.
type JWT interface {
	GenerateOutcomeToken(kind, message string) (string, error)
	ValidateOutcomeToken(tokenString string) (*OutcomeClaims, error)
}

// Service handles JWT operations
type Service struct {
	config *config.Config
}

// New creates a new JWT service. Without a configured secret a random one is used,
// so tokens only verify within this process.
func New(cfg *config.Config) JWT {
	if cfg.JWT.OutcomeSecret == "" {
		log.Warn().Msg("JWT_OUTCOME_SECRET is empty, using a random per-process secret")

		cfg.JWT.OutcomeSecret = uuid.NewString()
	}

	return &Service{
		config: cfg,
	}
}

func (s *Service) expireMin() int {
	if s.config.JWT.OutcomeExpireMin > 0 {
		return s.config.JWT.OutcomeExpireMin
	}

	return defaultOutcomeExpireMin
}

// GenerateOutcomeToken signs kind and message with HS256.
func (s *Service) GenerateOutcomeToken(kind, message string) (string, error) {
	issuedAt := timezone.Now()
	expiresAt := issuedAt.Add(time.Duration(s.expireMin()) * time.Minute)

	claims := OutcomeClaims{
		Kind:    kind,
		Message: message,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   outcomeSubject,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.JWT.OutcomeSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateOutcomeToken validates and parses an outcome token
func (s *Service) ValidateOutcomeToken(tokenString string) (*OutcomeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OutcomeClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWT.OutcomeSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*OutcomeClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject != outcomeSubject || claims.Kind == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}
