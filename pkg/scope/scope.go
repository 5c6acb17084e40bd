// Package scope issues and verifies the signed session tokens carried in the session cookie or
// an Authorization: Bearer header.
package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "deal-tracker"

var (
	ErrInvalidToken = errors.New("scope: invalid token")
	ErrExpiredToken = errors.New("scope: token expired")
	ErrMissingKey   = errors.New("scope: signing key is required")
)

// Payload is the identity a session token carries.
type Payload struct {
	UserID  string `json:"uid"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"adm,omitempty"`
	jwt.RegisteredClaims
}

//go:generate mockery --name Manager
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type implManager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// New returns an HS256 token Manager. ttl <= 0 issues tokens without expiry.
func New(secretKey string, ttl time.Duration) (Manager, error) {
	if secretKey == "" {
		return nil, ErrMissingKey
	}
	return &implManager{key: []byte(secretKey), ttl: ttl, now: time.Now}, nil
}

func (m *implManager) CreateToken(p Payload) (string, error) {
	if p.UserID == "" {
		return "", fmt.Errorf("%w: user id is required", ErrInvalidToken)
	}

	now := m.now()
	p.Issuer = issuer
	p.Subject = p.UserID
	p.IssuedAt = jwt.NewNumericDate(now)
	if m.ttl > 0 {
		p.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, p).SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("scope: sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) Verify(token string) (Payload, error) {
	var p Payload
	_, err := jwt.ParseWithClaims(token, &p, func(t *jwt.Token) (any, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Payload{}, ErrExpiredToken
	default:
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if p.UserID == "" {
		return Payload{}, ErrInvalidToken
	}
	return p, nil
}
