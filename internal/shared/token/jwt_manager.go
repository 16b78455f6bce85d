package token

import (
	"errors"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: expired token")
	ErrInvalidClaims = errors.New("token: invalid claims")
)

// Token types carried in the token_type claim
const (
	ACCESS  = "access"
	REFRESH = "refresh"
)

// audience keeps tokens of other services signed with a shared secret out
const audience = "tour-admin"

// leeway tolerates clock skew between API replicas
const leeway = 30 * time.Second

type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type Manager interface {
	GenerateAccessToken(userID, email, role string) (string, error)
	GenerateRefreshToken(userID, email, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	AccessExpiry() time.Duration
}

// JWTManager signs HS256 tokens with the configured secret
type JWTManager struct {
	secret        []byte
	issuer        string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:        []byte(cfg.JWT.Secret),
		issuer:        cfg.App.Name,
		accessExpiry:  cfg.JWT.Expiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
		now:           time.Now,
	}
}

func (m *JWTManager) AccessExpiry() time.Duration {
	return m.accessExpiry
}

func (m *JWTManager) GenerateAccessToken(userID, email, role string) (string, error) {
	return m.generate(userID, email, role, ACCESS, m.accessExpiry)
}

func (m *JWTManager) GenerateRefreshToken(userID, email, role string) (string, error) {
	return m.generate(userID, email, role, REFRESH, m.refreshExpiry)
}

func (m *JWTManager) generate(userID, email, role, tokenType string, expiry time.Duration) (string, error) {
	now := m.now()

	claims := Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			Audience:  jwt.ClaimStrings{audience},
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(audience),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(m.now),
	)

	claims := &Claims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return nil, ErrInvalidClaims
	case err != nil:
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" || claims.UserID != claims.Subject {
		return nil, ErrInvalidClaims
	}
	if claims.TokenType != ACCESS && claims.TokenType != REFRESH {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
