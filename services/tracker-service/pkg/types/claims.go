package types

import "github.com/golang-jwt/jwt/v5"

// JWTClaims are the claims of an access token. The subject is the user id.
type JWTClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
