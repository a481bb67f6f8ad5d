package security

import (
	"errors"
	"fmt"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	tokenIssuer     = "guytogo"
	tokenTypeAccess = "access"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the acting identity of a session.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	Type  string `json:"type,omitempty"`
}

// Subject is the identity a verified token speaks for.
type Subject struct {
	UserID string
	Email  string
	Role   entities.Role
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*TokenManager)(nil)

func NewTokenManager(secret string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (m *TokenManager) Issue(identity entities.Identity) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: identity.Email,
		Role:  string(identity.Role),
		Type:  tokenTypeAccess,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies signature, expiry and token type.
func (m *TokenManager) Parse(tokenString string) (Subject, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		return Subject{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Type != tokenTypeAccess || claims.Subject == "" {
		return Subject{}, ErrInvalidToken
	}
	return Subject{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   entities.Role(claims.Role),
	}, nil
}
