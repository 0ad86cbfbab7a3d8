package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTAuthenticator issues and validates HS256 bearer tokens for a single issuer/audience pair.
type JWTAuthenticator struct {
	audience  string
	issuer    string
	secret    []byte
	expiresIn time.Duration
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
func NewJWTAuthenticator(audience, issuer, secret string, expiresIn time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{
		audience:  audience,
		issuer:    issuer,
		secret:    []byte(secret),
		expiresIn: expiresIn,
	}
}

// ExpiresIn reports how long issued tokens stay valid.
func (a *JWTAuthenticator) ExpiresIn() time.Duration {
	return a.expiresIn
}

// RegisteredClaims builds the standard claim set for a token issued at now.
func (a *JWTAuthenticator) RegisteredClaims(subject, id string, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        id,
		Subject:   subject,
		Issuer:    a.issuer,
		Audience:  jwt.ClaimStrings{a.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.expiresIn)),
	}
}

// GenerateToken signs the given claims.
// This is generic and accepts any type that implements jwt.Claims.
func (a *JWTAuthenticator) GenerateToken(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString(a.secret)
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}

// ValidateTokenWithClaims validates a JWT token and parses it into the provided claims type.
// The claims parameter should be a pointer to a struct that implements jwt.Claims.
func (a *JWTAuthenticator) ValidateTokenWithClaims(tokenString string, claims jwt.Claims) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.audience),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return token, nil
}
