// Package jwtauth implementa auth.AuthVerifier con tokens HS256.
package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medication-reminder/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrNotConfigured = errors.New("jwt secret not configured")
)

// Claims del token: sub = user id.
type Claims struct {
	Email     string `json:"email,omitempty"`
	Anonymous bool   `json:"anonymous,omitempty"`
	jwt.RegisteredClaims
}

type Config struct {
	Secret   string
	Issuer   string // opcional; si se define se exige
	Audience string // opcional; si se define se exige
}

type Verifier struct {
	secret []byte
	opts   []jwt.ParserOption
	issuer string
	aud    string
}

var _ auth.AuthVerifier = (*Verifier)(nil)

func NewVerifier(cfg Config) *Verifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, jwt.WithIssuer(iss))
	}
	if aud := strings.TrimSpace(cfg.Audience); aud != "" {
		opts = append(opts, jwt.WithAudience(aud))
	}
	return &Verifier{
		secret: []byte(cfg.Secret),
		opts:   opts,
		issuer: strings.TrimSpace(cfg.Issuer),
		aud:    strings.TrimSpace(cfg.Audience),
	}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || len(v.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var c Claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, v.opts...)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify failed: %w", err)
	}

	uid := strings.TrimSpace(c.Subject)
	if uid == "" {
		return auth.Claims{}, errors.New("jwt claims missing sub")
	}

	return auth.Claims{
		UserID:    uid,
		Email:     strings.TrimSpace(c.Email),
		Anonymous: c.Anonymous,
	}, nil
}

// Issue firma un token para userID (CLI de desarrollo y tests).
func (v *Verifier) Issue(claims auth.Claims, ttl time.Duration) (string, error) {
	if v == nil || len(v.secret) == 0 {
		return "", ErrNotConfigured
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	c := Claims{
		Email:     claims.Email,
		Anonymous: claims.Anonymous,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if v.aud != "" {
		c.Audience = jwt.ClaimStrings{v.aud}
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
}
