// Package auth issues and checks the bearer tokens players log in with.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	game_constants "Uno/constants/game"
	models "Uno/models/postgres"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevokedToken = errors.New("token has been revoked")
)

type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Revocations remembers logged-out tokens until they would have expired
// anyway. Implementations must be safe for concurrent use.
type Revocations interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type Service struct {
	secret  []byte
	ttl     time.Duration
	revoked Revocations
	now     func() time.Time
}

func NewService(secret string, revoked Revocations) *Service {
	return &Service{
		secret:  []byte(secret),
		ttl:     game_constants.TOKEN_TTL,
		revoked: revoked,
		now:     time.Now,
	}
}

func (s *Service) IssueToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		ID:    user.ID,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken validates signature and expiry, then checks the revocation set.
func (s *Service) ParseToken(ctx context.Context, raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	revoked, err := s.revoked.IsRevoked(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("checking revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

// Revoke blacklists raw for the rest of its lifetime.
func (s *Service) Revoke(ctx context.Context, raw string) error {
	claims, err := s.ParseToken(ctx, raw)
	if err != nil {
		return err
	}
	ttl := s.ttl
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if ttl <= 0 {
		return nil
	}
	return s.revoked.Revoke(ctx, raw, ttl)
}
