package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"brigadas-forestales/internal/ports/auth"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretRequired = errors.New("session secret required")
	ErrTokenEmpty     = errors.New("token is empty")
	ErrInvalidToken   = errors.New("invalid token")
)

const issuer = "brigadas-forestales"

// Config del emisor de sesiones.
type Config struct {
	Secret string
	TTL    time.Duration
}

type tokenClaims struct {
	Nombre string `json:"nombre"`
	Admin  bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// Manager emite y verifica tokens HS256.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(cfg Config) (*Manager, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrSecretRequired
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *Manager) Issue(_ context.Context, claims auth.Claims) (auth.Session, error) {
	sub := strings.TrimSpace(claims.UserID)
	if sub == "" {
		return auth.Session{}, errors.New("session: user id required")
	}

	now := m.now()
	exp := now.Add(m.ttl)
	tc := tokenClaims{
		Nombre: claims.Nombre,
		Admin:  claims.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(m.secret)
	if err != nil {
		return auth.Session{}, fmt.Errorf("session: sign: %w", err)
	}
	return auth.Session{Token: signed, ExpiresAt: exp}, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var tc tokenClaims
	_, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub := strings.TrimSpace(tc.Subject)
	if sub == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return auth.Claims{UserID: sub, Nombre: tc.Nombre, Admin: tc.Admin}, nil
}
