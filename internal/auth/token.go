package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lifestream-health/donation-backend/internal/utils"
)

// Claims is the signed payload carried by a bearer token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens with an HS256 secret held in
// config, never as a compile-time literal.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue signs a token for the given user valid for the configured lifetime.
func (s *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature, expiry and issuer of a token string and
// returns the principal it identifies.
func (s *TokenService) Verify(token string) (utils.Principal, error) {
	if strings.TrimSpace(token) == "" {
		return utils.Principal{}, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return utils.Principal{}, ErrExpiredToken
		}
		return utils.Principal{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return utils.Principal{}, ErrInvalidToken
	}
	if claims.Issuer != s.issuer || claims.Subject == "" || !ValidRole(claims.Role) {
		return utils.Principal{}, ErrInvalidToken
	}

	return utils.Principal{UserID: claims.Subject, Role: claims.Role}, nil
}
